// Command ecdsademo generates a key pair on a chosen curve, signs a message,
// and verifies the signature, printing the result.
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/estevao-braga/ecdsacore/bignat"
	"github.com/estevao-braga/ecdsacore/curve"
	"github.com/estevao-braga/ecdsacore/ecdsa"
	"github.com/estevao-braga/ecdsacore/hashsource"
	"github.com/estevao-braga/ecdsacore/randsource"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var curveName string
	var message string
	var nonce int64

	cmd := &cobra.Command{
		Use:   "ecdsademo",
		Short: "Generate a key pair, sign a message, and verify it",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			return run(logger, curveName, message, nonce)
		},
	}

	cmd.Flags().StringVar(&curveName, "curve", "secp256k1", "curve to use: secp256k1 or f17-toy")
	cmd.Flags().StringVar(&message, "message", "Bob -> 1 BTC -> Alice", "message to sign")
	cmd.Flags().Int64Var(&nonce, "nonce", 0, "fixed per-signature nonce k; a non-zero value also seeds a deterministic private key (0 = draw both from crypto/rand)")

	return cmd
}

func selectSigner(name string) (ecdsa.Signer, error) {
	switch name {
	case "secp256k1":
		return ecdsa.New(curve.Secp256k1(), curve.Secp256k1Generator(), curve.Secp256k1Order()), nil
	case "f17-toy":
		c := curve.New(bignat.FromUint64(2), bignat.FromUint64(2), bignat.FromUint64(17))
		return ecdsa.New(c, curve.Affine(bignat.FromUint64(5), bignat.FromUint64(1)), bignat.FromUint64(19)), nil
	default:
		return ecdsa.Signer{}, fmt.Errorf("ecdsademo: unknown curve %q", name)
	}
}

func run(logger *zap.Logger, curveName, message string, nonce int64) error {
	signer, err := selectSigner(curveName)
	if err != nil {
		logger.Warn("unknown curve", zap.String("curve", curveName))
		return err
	}

	rng := randsource.Source(randsource.CryptoRand{})
	if nonce != 0 {
		rng = randsource.Deterministic{Value: big.NewInt(nonce)}
	}

	kp, err := signer.GenerateKeyPair(rng)
	if err != nil {
		logger.Warn("key generation failed", zap.Error(err))
		return err
	}
	logger.Info("generated key pair", zap.String("curve", curveName))

	h := ecdsa.ReduceMessage(hashsource.SHA256{}, []byte(message), signer.Order)

	var k bignat.BigNat
	if nonce != 0 {
		k = bignat.New(big.NewInt(nonce))
	} else {
		k, err = rng.Uniform(bignat.One(), signer.Order)
		if err != nil {
			logger.Warn("nonce generation failed", zap.Error(err))
			return err
		}
	}

	sig, err := signer.Sign(h, kp.PrivateKey, k)
	if err != nil {
		logger.Warn("signing failed", zap.Error(err))
		return err
	}
	logger.Info("signed message")

	ok := signer.Verify(h, kp.PublicKey, sig)
	logger.Info("verification result", zap.Bool("verified", ok))

	fmt.Printf("verified: %v\n", ok)
	return nil
}
