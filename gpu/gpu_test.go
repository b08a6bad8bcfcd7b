package gpu

import (
	"testing"

	goose "github.com/jeff-pow/silly-goose"
)

// spirvMagic is the first word of every valid SPIR-V module.
const spirvMagic = 0x07230203

func TestCompileStages(t *testing.T) {
	code, err := CompileStages()
	if err != nil {
		t.Fatalf("CompileStages: %v", err)
	}
	if len(code) == 0 {
		t.Fatal("empty SPIR-V output")
	}
	if code[0] != spirvMagic {
		t.Errorf("first word = %#x, want SPIR-V magic %#x", code[0], spirvMagic)
	}
}

func TestCompileShader_InvalidSource(t *testing.T) {
	if _, err := CompileShader("fn broken("); err == nil {
		t.Fatal("invalid WGSL must fail to compile")
	}
}

func TestCompileShader_WordPacking(t *testing.T) {
	code, err := CompileShader(goose.ShaderSource())
	if err != nil {
		t.Fatalf("CompileShader: %v", err)
	}

	// Word 1 carries the SPIR-V version; its upper and lower bytes are
	// zero in every released encoding, which catches endianness bugs
	// in the byte-to-word repack.
	if len(code) < 2 {
		t.Fatal("truncated SPIR-V module")
	}
	version := code[1]
	if version&0xFF != 0 || version>>24 != 0 {
		t.Errorf("malformed version word %#x, repack endianness is wrong", version)
	}
}
