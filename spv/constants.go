package spv

// Magic is the SPIR-V magic number. Its byte order in the first word of a
// binary determines the endianness of the whole stream.
const Magic uint32 = 0x07230203

// HeaderWords is the fixed size of the module header in words:
// magic, version, generator, bound, schema.
const HeaderWords = 5

// GeneratorUnregistered is the generator magic for tools without a
// registered vendor ID.
const GeneratorUnregistered uint32 = 0

// MaxWordCount is the largest instruction size the 16-bit word-count
// field can express, including the opcode word itself.
const MaxWordCount = 0xFFFF

// Version identifies a SPIR-V specification version.
type Version struct {
	Major uint8
	Minor uint8
}

// Supported versions.
var (
	Version1_0 = Version{1, 0}
	Version1_1 = Version{1, 1}
	Version1_2 = Version{1, 2}
	Version1_3 = Version{1, 3}
	Version1_4 = Version{1, 4}
	Version1_5 = Version{1, 5}
	Version1_6 = Version{1, 6}
)

// Word returns the header encoding of the version.
func (v Version) Word() uint32 {
	return uint32(v.Major)<<16 | uint32(v.Minor)<<8
}

// VersionFromWord decodes the header version word.
func VersionFromWord(w uint32) Version {
	return Version{Major: uint8(w >> 16), Minor: uint8(w >> 8)}
}

func (v Version) String() string {
	return string([]byte{'0' + v.Major, '.', '0' + v.Minor})
}

// supported reports whether this implementation accepts the version.
func (v Version) supported() bool {
	return v.Major == 1 && v.Minor <= 6
}
