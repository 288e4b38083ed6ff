package cells

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v5/core/rlwe"
	"github.com/tuneinsight/lattigo/v5/he/hefloat"
	"gonum.org/v1/gonum/floats"

	"numbench/harness"
)

// heContext bundles the CKKS machinery for the he cell. Key generation
// happens once at cell construction; only the encode/encrypt/multiply/decrypt
// round trip is timed.
type heContext struct {
	params    hefloat.Parameters
	encoder   *hefloat.Encoder
	encryptor *rlwe.Encryptor
	decryptor *rlwe.Decryptor
	eval      *hefloat.Evaluator
}

func newHEContext() *heContext {
	params, err := hefloat.NewParametersFromLiteral(hefloat.ParametersLiteral{
		LogN:            12,
		LogQ:            []int{45, 35, 35},
		LogP:            []int{50},
		LogDefaultScale: 35,
	})
	if err != nil {
		panic(err)
	}

	kgen := hefloat.NewKeyGenerator(params)
	sk, pk := kgen.GenKeyPairNew()
	rlk := kgen.GenRelinearizationKeyNew(sk)

	return &heContext{
		params:    params,
		encoder:   hefloat.NewEncoder(params),
		encryptor: hefloat.NewEncryptor(params, pk),
		decryptor: hefloat.NewDecryptor(params, sk),
		eval:      hefloat.NewEvaluator(params, rlwe.NewMemEvaluationKeySet(rlk)),
	}
}

// mulRoundTrip encodes, encrypts, multiplies and decrypts two plaintext
// vectors under CKKS, writing the decoded product into out.
func (h *heContext) mulRoundTrip(a, b, out []float64) error {
	ptA := hefloat.NewPlaintext(h.params, h.params.MaxLevel())
	if err := h.encoder.Encode(a, ptA); err != nil {
		return err
	}
	ptB := hefloat.NewPlaintext(h.params, h.params.MaxLevel())
	if err := h.encoder.Encode(b, ptB); err != nil {
		return err
	}
	ctA, err := h.encryptor.EncryptNew(ptA)
	if err != nil {
		return err
	}
	ctB, err := h.encryptor.EncryptNew(ptB)
	if err != nil {
		return err
	}
	ctProd, err := h.eval.MulRelinNew(ctA, ctB)
	if err != nil {
		return err
	}
	return h.encoder.Decode(h.decryptor.DecryptNew(ctProd), out)
}

// HECell compares an elementwise vector product computed in the clear against
// the same product computed on CKKS ciphertexts through the standard
// encode/encrypt/multiply/decrypt pipeline. The encryption library is the
// black box under measurement; CKKS arithmetic is approximate, so equivalence
// holds to 1e-2.
func HECell() Cell {
	ctx := newHEContext()
	slots := ctx.params.MaxSlots()

	a := randVec(slots, -1, 1)
	b := randVec(slots, -1, 1)

	plainOut := make([]float64, slots)
	heOut := make([]float64, slots)
	var heErr error

	cands := []harness.Candidate{
		{Name: "plain", Fn: func() {
			for i := range a {
				plainOut[i] = a[i] * b[i]
			}
		}},
		{Name: "ckks", Fn: func() {
			heErr = ctx.mulRoundTrip(a, b, heOut)
		}},
	}

	check := func() error {
		for _, cand := range cands {
			cand.Fn()
		}
		if heErr != nil {
			return fmt.Errorf("he: ckks round trip: %w", heErr)
		}
		if !floats.EqualApprox(plainOut, heOut, 1e-2) {
			return fmt.Errorf("he: ckks product diverges from plaintext product")
		}
		return nil
	}

	return Cell{
		Name:       "he",
		Detail:     fmt.Sprintf("elementwise product of %d values, plaintext vs CKKS", slots),
		Candidates: cands,
		Check:      check,
	}
}
