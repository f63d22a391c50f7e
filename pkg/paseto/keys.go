package pasetotoken

import (
	"strings"

	paseto "aidanwoods.dev/go-paseto"
)

type Mode string

const (
	ModeLocal  Mode = "local"  // v4.local, symmetric encryption
	ModePublic Mode = "public" // v4.public, Ed25519 signatures
)

// Keys is the parsed key set for one mode. Only the fields of the active
// mode are populated.
type Keys struct {
	Mode Mode

	Symmetric *paseto.V4SymmetricKey

	Secret *paseto.V4AsymmetricSecretKey
	Public *paseto.V4AsymmetricPublicKey
}

// KeyMaterial is the hex-encoded form keys take in configuration.
type KeyMaterial struct {
	Mode Mode

	SymmetricHex string
	SecretHex    string
	PublicHex    string
}

func LoadKeys(in KeyMaterial) (Keys, error) {
	switch in.Mode {
	case ModeLocal:
		return loadLocalKeys(in.SymmetricHex)
	case ModePublic:
		return loadPublicKeys(in.SecretHex, in.PublicHex)
	default:
		return Keys{}, ErrConfig{Msg: "unknown mode (use local|public)"}
	}
}

func loadLocalKeys(symmetricHex string) (Keys, error) {
	raw := strings.TrimSpace(symmetricHex)
	if raw == "" {
		return Keys{}, ErrConfig{Msg: "local mode requires a symmetric key"}
	}
	k, err := paseto.V4SymmetricKeyFromHex(raw)
	if err != nil {
		return Keys{}, ErrConfig{Msg: "invalid symmetric key hex: " + err.Error()}
	}
	return Keys{Mode: ModeLocal, Symmetric: &k}, nil
}

// loadPublicKeys accepts a secret key alone (the public half is derived),
// a public key alone (verify-only deployments), or both.
func loadPublicKeys(secretHex, publicHex string) (Keys, error) {
	out := Keys{Mode: ModePublic}

	if raw := strings.TrimSpace(secretHex); raw != "" {
		sk, err := paseto.NewV4AsymmetricSecretKeyFromHex(raw)
		if err != nil {
			return Keys{}, ErrConfig{Msg: "invalid secret key hex: " + err.Error()}
		}
		out.Secret = &sk
		pk := sk.Public()
		out.Public = &pk
	}

	if raw := strings.TrimSpace(publicHex); raw != "" {
		pk, err := paseto.NewV4AsymmetricPublicKeyFromHex(raw)
		if err != nil {
			return Keys{}, ErrConfig{Msg: "invalid public key hex: " + err.Error()}
		}
		out.Public = &pk
	}

	if out.Secret == nil && out.Public == nil {
		return Keys{}, ErrConfig{Msg: "public mode requires a secret and/or public key"}
	}
	return out, nil
}

// NewLocalKeys generates a fresh symmetric key, for tests and local runs.
func NewLocalKeys() Keys {
	k := paseto.NewV4SymmetricKey()
	return Keys{Mode: ModeLocal, Symmetric: &k}
}

// NewPublicKeys generates a fresh signing pair, for tests and local runs.
func NewPublicKeys() Keys {
	sk := paseto.NewV4AsymmetricSecretKey()
	pk := sk.Public()
	return Keys{Mode: ModePublic, Secret: &sk, Public: &pk}
}
