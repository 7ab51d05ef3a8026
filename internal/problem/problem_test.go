package problem

import (
	"testing"

	"panmixia/pkg/panmixia"
)

func mustParse(t *testing.T, text string) *panmixia.BinaryGenotype {
	t.Helper()
	g, err := panmixia.ParseBinaryGenotype(text)
	if err != nil {
		t.Fatalf("parse %q: %v", text, err)
	}
	return g
}

func TestOneMax(t *testing.T) {
	fitness, optimal := OneMax{}.Evaluate(mustParse(t, "1100"))
	if fitness != 0.5 || optimal {
		t.Fatalf("half-set genotype: fitness=%v optimal=%v", fitness, optimal)
	}

	fitness, optimal = OneMax{}.Evaluate(mustParse(t, "1111"))
	if fitness != 1.0 || !optimal {
		t.Fatalf("all-ones genotype: fitness=%v optimal=%v", fitness, optimal)
	}
}

func TestDeceptiveTrap(t *testing.T) {
	trap := DeceptiveTrap(5)

	fitness, optimal := trap.Evaluate(mustParse(t, "1111111111"))
	if fitness != 10 || !optimal {
		t.Fatalf("two full blocks: fitness=%v optimal=%v", fitness, optimal)
	}

	// All-zeros is the deceptive attractor: each block scores k-1.
	fitness, optimal = trap.Evaluate(mustParse(t, "0000000000"))
	if fitness != 8 || optimal {
		t.Fatalf("all-zeros blocks: fitness=%v optimal=%v", fitness, optimal)
	}

	// A block one bit short of full scores 0.
	fitness, optimal = trap.Evaluate(mustParse(t, "1111011111"))
	if fitness != 5 || optimal {
		t.Fatalf("near-full block: fitness=%v optimal=%v", fitness, optimal)
	}
}

func TestHIFF(t *testing.T) {
	fitness, optimal := HIFF{}.Evaluate(mustParse(t, "0000"))
	// Two uniform 2-blocks plus one uniform 4-block: 2+2+4.
	if fitness != 8 || !optimal {
		t.Fatalf("uniform genotype: fitness=%v optimal=%v", fitness, optimal)
	}

	fitness, optimal = HIFF{}.Evaluate(mustParse(t, "0011"))
	// Both 2-blocks are uniform but the 4-block is not: 2+2.
	if fitness != 4 || optimal {
		t.Fatalf("mixed genotype: fitness=%v optimal=%v", fitness, optimal)
	}
}

func TestHIFFAcceptsAnyLength(t *testing.T) {
	// 129 bits crosses the backing word array of a power-of-two scan;
	// complete blocks are 64+32+16+8+4+2+1, each worth its size.
	fitness, optimal := HIFF{}.Evaluate(panmixia.AllZerosGenotype(129))
	if fitness != 896 || !optimal {
		t.Fatalf("129-bit uniform genotype: fitness=%v optimal=%v", fitness, optimal)
	}

	// 100 bits: 50+25 full small blocks score 100 each, then 12*8, 6*16,
	// 3*32 and 1*64; the trailing partial blocks contribute nothing.
	fitness, optimal = HIFF{}.Evaluate(panmixia.AllZerosGenotype(100))
	if fitness != 552 || !optimal {
		t.Fatalf("100-bit uniform genotype: fitness=%v optimal=%v", fitness, optimal)
	}

	g := mustParse(t, "00001")
	fitness, optimal = HIFF{}.Evaluate(g)
	// Only the two complete 2-blocks and the complete 4-block are scored.
	if fitness != 8 || !optimal {
		t.Fatalf("5-bit genotype: fitness=%v optimal=%v", fitness, optimal)
	}
}

func TestFromName(t *testing.T) {
	for _, name := range Names() {
		p, err := FromName(name)
		if err != nil {
			t.Fatalf("resolve %s: %v", name, err)
		}
		if p == nil {
			t.Fatalf("nil problem for %s", name)
		}
	}
	if _, err := FromName("bogus"); err == nil {
		t.Fatal("expected error for unknown problem")
	}
}
