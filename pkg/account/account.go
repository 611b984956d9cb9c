// Package account implements Schnorr signing keys over a prime order group.
//
// A private key is a pair of scalars (sk_sig, r_sig) derived from a fixed
// length seed. Its public counterpart, the compute key, consists of the two
// images pk_sig = [sk_sig]•G and pr_sig = [r_sig]•G, together with a PRF seed
// sk_prf obtained by hashing the two images. The address is the group element
//
//	address = pk_sig + pr_sig + [sk_prf]•G,
//
// so anyone holding the compute key can recompute the address, but not the
// private key. Signatures bind the compute key and are checked against the
// address, see Signature.Verify.
package account

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/hkdf"

	"github.com/puzzlehq/aleo-frost/pkg/math/curve"
	"github.com/puzzlehq/aleo-frost/pkg/math/sample"
)

// SeedLength is the number of bytes in a private key seed.
const SeedLength = 32

// kdfSalt separates the account KDF from other uses of the seed.
var kdfSalt = []byte("Aleo-FROST-Account")

// PrivateKey holds the two secret scalars of an account.
type PrivateKey struct {
	group curve.Curve
	seed  []byte
	skSig curve.Scalar
	rSig  curve.Scalar
}

// NewPrivateKey derives a private key from a seed of SeedLength bytes.
// The derivation is deterministic, the same seed always yields the same key.
func NewPrivateKey(group curve.Curve, seed []byte) (*PrivateKey, error) {
	if len(seed) != SeedLength {
		return nil, fmt.Errorf("account: seed must be %d bytes, got %d", SeedLength, len(seed))
	}
	skSig, err := deriveScalar(group, seed, "sk_sig")
	if err != nil {
		return nil, fmt.Errorf("account: failed to derive sk_sig: %w", err)
	}
	rSig, err := deriveScalar(group, seed, "r_sig")
	if err != nil {
		return nil, fmt.Errorf("account: failed to derive r_sig: %w", err)
	}
	// a zero scalar would make the key unusable, and the seed is fixed so
	// there is nothing to retry
	if skSig.IsZero() || rSig.IsZero() {
		return nil, fmt.Errorf("account: seed derives a zero scalar")
	}
	sk := &PrivateKey{
		group: group,
		seed:  make([]byte, SeedLength),
		skSig: skSig,
		rSig:  rSig,
	}
	copy(sk.seed, seed)
	return sk, nil
}

// GenPrivateKey generates a new private key from a source of randomness.
//
// Errors returned by this function will only come from the reader.
func GenPrivateKey(group curve.Curve, rand io.Reader) (*PrivateKey, error) {
	for {
		seed := make([]byte, SeedLength)
		if _, err := io.ReadFull(rand, seed); err != nil {
			return nil, fmt.Errorf("account: failed to read seed: %w", err)
		}
		if sk, err := NewPrivateKey(group, seed); err == nil {
			return sk, nil
		}
	}
}

// deriveScalar expands the seed into a uniform scalar for the given label.
func deriveScalar(group curve.Curve, seed []byte, label string) (curve.Scalar, error) {
	kdf := hkdf.New(sha256.New, seed, kdfSalt, []byte(label))
	return sample.Scalar(kdf, group)
}

// Curve returns the group the key was generated for.
func (sk *PrivateKey) Curve() curve.Curve {
	return sk.group
}

// Seed returns a copy of the seed the key was derived from.
func (sk *PrivateKey) Seed() []byte {
	seed := make([]byte, SeedLength)
	copy(seed, sk.seed)
	return seed
}

// SkSig returns a copy of the signing scalar sk_sig.
func (sk *PrivateKey) SkSig() curve.Scalar {
	return sk.group.NewScalar().Set(sk.skSig)
}

// RSig returns a copy of the randomizer scalar r_sig.
func (sk *PrivateKey) RSig() curve.Scalar {
	return sk.group.NewScalar().Set(sk.rSig)
}

// ComputeKey returns the public counterpart of the private key.
func (sk *PrivateKey) ComputeKey() *ComputeKey {
	return &ComputeKey{
		group: sk.group,
		pkSig: sk.skSig.ActOnBase(),
		prSig: sk.rSig.ActOnBase(),
	}
}

// Address returns the address of the private key.
func (sk *PrivateKey) Address() (Address, error) {
	return sk.ComputeKey().Address()
}

// ComputeKey is the public counterpart of a PrivateKey.
type ComputeKey struct {
	group curve.Curve
	pkSig curve.Point
	prSig curve.Point
}

// NewComputeKey wraps the two public images of an account.
func NewComputeKey(group curve.Curve, pkSig, prSig curve.Point) (*ComputeKey, error) {
	if pkSig == nil || prSig == nil {
		return nil, fmt.Errorf("account: compute key is missing a component")
	}
	if pkSig.IsIdentity() || prSig.IsIdentity() {
		return nil, fmt.Errorf("account: compute key contains the identity")
	}
	ck := &ComputeKey{
		group: group,
		pkSig: group.NewPoint().Set(pkSig),
		prSig: group.NewPoint().Set(prSig),
	}
	return ck, nil
}

// EmptyComputeKey returns a ComputeKey that can be unmarshalled for the group.
func EmptyComputeKey(group curve.Curve) *ComputeKey {
	return &ComputeKey{
		group: group,
		pkSig: group.NewPoint(),
		prSig: group.NewPoint(),
	}
}

// Curve returns the group the key belongs to.
func (ck *ComputeKey) Curve() curve.Curve {
	return ck.group
}

// PkSig returns a copy of [sk_sig]•G.
func (ck *ComputeKey) PkSig() curve.Point {
	return ck.group.NewPoint().Set(ck.pkSig)
}

// PrSig returns a copy of [r_sig]•G.
func (ck *ComputeKey) PrSig() curve.Point {
	return ck.group.NewPoint().Set(ck.prSig)
}

// SkPrf returns the PRF seed of the account, obtained by hashing the
// x coordinates of pk_sig and pr_sig. It is public data, anyone holding the
// compute key can recompute it.
func (ck *ComputeKey) SkPrf() (curve.Scalar, error) {
	return hashToScalar(ck.group, "Aleo-FROST-SkPrf",
		ck.pkSig.XScalar(), ck.prSig.XScalar())
}

// Address returns the address committing to the compute key,
//
//	address = pk_sig + pr_sig + [sk_prf]•G.
func (ck *ComputeKey) Address() (Address, error) {
	skPrf, err := ck.SkPrf()
	if err != nil {
		return Address{}, fmt.Errorf("account: failed to derive sk_prf: %w", err)
	}
	point := ck.pkSig.Add(ck.prSig).Add(skPrf.ActOnBase())
	return Address{group: ck.group, point: point}, nil
}

// Equal returns true if both compute keys hold the same public images.
func (ck *ComputeKey) Equal(other *ComputeKey) bool {
	if other == nil {
		return false
	}
	return ck.pkSig.Equal(other.pkSig) && ck.prSig.Equal(other.prSig)
}

type computeKeyRaw struct {
	PkSig []byte
	PrSig []byte
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (ck *ComputeKey) MarshalBinary() ([]byte, error) {
	pkSig, err := ck.pkSig.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("compute key.PkSig: %w", err)
	}
	prSig, err := ck.prSig.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("compute key.PrSig: %w", err)
	}
	return cbor.Marshal(computeKeyRaw{PkSig: pkSig, PrSig: prSig})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// The receiver must have been obtained from EmptyComputeKey.
func (ck *ComputeKey) UnmarshalBinary(data []byte) error {
	if ck.group == nil {
		return fmt.Errorf("account: unmarshal into an uninitialized compute key")
	}
	var raw computeKeyRaw
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("compute key: %w", err)
	}
	pkSig := ck.group.NewPoint()
	if err := pkSig.UnmarshalBinary(raw.PkSig); err != nil {
		return fmt.Errorf("compute key.PkSig: %w", err)
	}
	prSig := ck.group.NewPoint()
	if err := prSig.UnmarshalBinary(raw.PrSig); err != nil {
		return fmt.Errorf("compute key.PrSig: %w", err)
	}
	ck.pkSig = pkSig
	ck.prSig = prSig
	return nil
}

// Address identifies an account by a single group element.
type Address struct {
	group curve.Curve
	point curve.Point
}

// NewAddress wraps an address point.
func NewAddress(group curve.Curve, point curve.Point) Address {
	return Address{group: group, point: group.NewPoint().Set(point)}
}

// Point returns a copy of the underlying group element.
func (a Address) Point() curve.Point {
	return a.group.NewPoint().Set(a.point)
}

// Equal returns true if both addresses refer to the same group element.
func (a Address) Equal(other Address) bool {
	if a.point == nil || other.point == nil {
		return a.point == other.point
	}
	return a.point.Equal(other.point)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (a Address) MarshalBinary() ([]byte, error) {
	return a.point.MarshalBinary()
}

// EmptyAddress returns an Address that can be unmarshalled for the group.
func EmptyAddress(group curve.Curve) *Address {
	return &Address{group: group, point: group.NewPoint()}
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// The receiver must have been obtained from EmptyAddress.
func (a *Address) UnmarshalBinary(data []byte) error {
	if a.group == nil {
		return fmt.Errorf("account: unmarshal into an uninitialized address")
	}
	point := a.group.NewPoint()
	if err := point.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("address: %w", err)
	}
	a.point = point
	return nil
}
