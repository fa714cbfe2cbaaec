package mmio

import (
	"sync/atomic"
	"unsafe"

	"github.com/npillmayer/fbterm/core"
)

// Region is a view onto caller-supplied memory which may be observed by
// hardware or another execution context. Every access is an atomic word
// operation; the compiler can neither elide, coalesce nor reorder them.
//
// The caller guarantees that the memory stays valid for the lifetime of the
// Region. For memory backed by a device mapping this cannot be verified.
type Region struct {
	mem  []byte
	base unsafe.Pointer
}

// NewRegion wraps mem. mem must be non-empty, 4-byte aligned and of even
// length. Violations panic.
func NewRegion(mem []byte) Region {
	core.Assert(len(mem) > 0, "memory region is empty")
	core.Assert(len(mem)%2 == 0, "memory region length %d is odd", len(mem))
	base := unsafe.Pointer(&mem[0])
	core.Assert(uintptr(base)%4 == 0, "memory region at %p is not 4-byte aligned", base)
	tracer().Debugf("mmio region of %d bytes at %p", len(mem), base)
	return Region{mem: mem, base: base}
}

// Len returns the size of the region in bytes.
func (r Region) Len() int {
	return len(r.mem)
}

// Bytes returns the underlying memory. Reads through the returned slice are
// not ordered; use it only when no other context can write concurrently.
func (r Region) Bytes() []byte {
	return r.mem
}

func (r Region) check(off, size int) {
	core.Assert(off >= 0 && off+size <= len(r.mem), "mmio access [%d:%d] outside region of %d bytes",
		off, off+size, len(r.mem))
	core.Assert(off%size == 0, "mmio access of %d bytes at misaligned offset %d", size, off)
}

func (r Region) word(off int) *uint32 {
	return (*uint32)(unsafe.Add(r.base, off))
}

func (r Region) half(off int) *uint16 {
	return (*uint16)(unsafe.Add(r.base, off))
}

// tail is true for the trailing half-word of a region of length 4n+2.
func (r Region) tail(off int) bool {
	return off&^3+4 > len(r.mem)
}

// Load32 reads the 32-bit word at byte offset off.
func (r Region) Load32(off int) uint32 {
	r.check(off, 4)
	return atomic.LoadUint32(r.word(off))
}

// Store32 writes the 32-bit word at byte offset off.
func (r Region) Store32(off int, v uint32) {
	r.check(off, 4)
	atomic.StoreUint32(r.word(off), v)
}

// Load16 reads the 16-bit half-word at byte offset off.
func (r Region) Load16(off int) uint16 {
	r.check(off, 2)
	if r.tail(off) {
		return *r.half(off)
	}
	w := atomic.LoadUint32(r.word(off &^ 3))
	return uint16(w >> halfShift(off))
}

// Store16 writes the 16-bit half-word at byte offset off. The containing
// word is updated with a compare-and-swap loop, leaving the other half
// untouched.
//
// A region whose length is not a multiple of 4 ends in a half-word without
// a containing word. That half-word is accessed with a single aligned
// 16-bit load or store, as sync/atomic has no 16-bit operations.
func (r Region) Store16(off int, v uint16) {
	r.check(off, 2)
	if r.tail(off) {
		*r.half(off) = v
		return
	}
	p := r.word(off &^ 3)
	shift := halfShift(off)
	mask := uint32(0xffff) << shift
	for {
		old := atomic.LoadUint32(p)
		nw := old&^mask | uint32(v)<<shift
		if atomic.CompareAndSwapUint32(p, old, nw) {
			return
		}
	}
}

// Load reads a value of size 2 or 4 bytes.
func (r Region) Load(off, size int) uint32 {
	switch size {
	case 4:
		return r.Load32(off)
	case 2:
		return uint32(r.Load16(off))
	}
	panic(core.Error(core.ECONTRACT, "unsupported mmio access size %d", size))
}

// Store writes a value of size 2 or 4 bytes.
func (r Region) Store(off, size int, v uint32) {
	switch size {
	case 4:
		r.Store32(off, v)
	case 2:
		r.Store16(off, uint16(v))
	default:
		panic(core.Error(core.ECONTRACT, "unsupported mmio access size %d", size))
	}
}

// halfShift returns the bit position of the half-word at byte offset off
// within its containing word.
func halfShift(off int) uint {
	lowHalf := off&2 == 0
	if littleEndian == lowHalf {
		return 0
	}
	return 16
}

var littleEndian = func() bool {
	w := uint32(1)
	return *(*byte)(unsafe.Pointer(&w)) == 1
}()

// Alloc returns n bytes of zeroed, word-aligned memory, rounded up to a
// multiple of 4. It is a convenience for hosted environments where no
// device memory is available.
func Alloc(n int) []byte {
	core.Assert(n > 0, "cannot allocate %d bytes", n)
	words := make([]uint32, (n+3)/4)
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), len(words)*4)
}
