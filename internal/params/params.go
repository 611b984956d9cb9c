package params

const (
	SecParam = 256
	SecBytes = SecParam / 8

	// HashBytes is the size of the fixed digest drawn from the XOF when a
	// plain hash value is needed instead of a stream.
	HashBytes = 64

	// UniformBytes is the number of bytes reduced modulo the group order to
	// obtain a single scalar. Twice the scalar size, so that the bias
	// introduced by the reduction is negligible.
	UniformBytes = 2 * SecBytes
)
