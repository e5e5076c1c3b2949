package pixel

import "sync"

// Codec decompresses one frame's worth of encapsulated pixel data bytes for
// a particular transfer syntax.
type Codec interface {
	// Decode decompresses one frame's concatenated fragment bytes into raw
	// pixel samples, using g for the geometry the caller expects the
	// decompressed frame to satisfy.
	Decode(frame []byte, g Geometry) ([]byte, error)
}

// CodecRegistry dispatches a transfer syntax UID to the Codec registered
// for it. The zero value is ready to use; codec packages such as pixel/rle
// register themselves with DefaultRegistry when imported.
type CodecRegistry struct {
	mu     sync.RWMutex
	codecs map[string]Codec
}

// NewCodecRegistry creates an empty registry.
func NewCodecRegistry() *CodecRegistry {
	return &CodecRegistry{codecs: make(map[string]Codec)}
}

// Register associates a Codec with a transfer syntax UID, replacing
// whatever was previously registered for it.
func (r *CodecRegistry) Register(transferSyntaxUID string, codec Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.codecs == nil {
		r.codecs = make(map[string]Codec)
	}
	r.codecs[transferSyntaxUID] = codec
}

// Lookup returns the Codec registered for transferSyntaxUID, or a
// TransferSyntaxError if none is registered.
func (r *CodecRegistry) Lookup(transferSyntaxUID string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codec, ok := r.codecs[transferSyntaxUID]
	if !ok {
		return nil, &TransferSyntaxError{UID: transferSyntaxUID}
	}
	return codec, nil
}

// DefaultRegistry is the package-wide CodecRegistry. It starts empty;
// importing pixel/rle registers RLE Lossless, and callers add JPEG,
// JPEG 2000, or proprietary codecs as their build supports them.
var DefaultRegistry = NewCodecRegistry()
