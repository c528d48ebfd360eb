package disagg

import (
	"math/rand"
	"os/exec"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testAlphabet = "amLpvqVh"

// requireTool skips tests that depend on an external splitting tool when it
// is not on PATH.
func requireTool(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %s", name, err)
	}
}

func TestWalkOrderPreservation(t *testing.T) {
	cases := []struct {
		chars string
		want  []string
	}{
		{"v", []string{"-v"}},
		{"vn", []string{"-v", "-n"}},
		{"abc", []string{"-a", "-b", "-c"}},
		{"amLpvqVh", []string{"-a", "-m", "-L", "-p", "-v", "-q", "-V", "-h"}},
	}
	for _, c := range cases {
		got, err := Walk{}.Expand(c.chars)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Walk.Expand(%q) == %v, want %v", c.chars, got, c.want)
		}
	}
}

// Re-joining the expansion must reproduce the original character sequence.
func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		chars := randomChars(r)
		expanded, err := Walk{}.Expand(chars)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		var joined strings.Builder
		for _, token := range expanded {
			joined.WriteString(strings.TrimPrefix(token, "-"))
		}
		if joined.String() != chars {
			t.Errorf("round trip of %q produced %q", chars, joined.String())
		}
		if len(expanded) != len(chars) {
			t.Errorf("expansion of %q has %d tokens, want %d", chars, len(expanded), len(chars))
		}
	}
}

// All three strategies must produce byte identical output for every input.
func TestStrategyEquivalence(t *testing.T) {
	requireTool(t, "grep")
	requireTool(t, "fold")

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		chars := randomChars(r)
		want, err := Walk{}.Expand(chars)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		for _, s := range []Strategy{GrepSplit{}, FoldSplit{}} {
			got, err := s.Expand(chars)
			if err != nil {
				t.Fatalf("%s.Expand(%q) failed: %s", s.Name(), chars, err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s disagrees with Walk on %q (-walk +%s):\n%s", s.Name(), chars, s.Name(), diff)
			}
		}
	}
}

func randomChars(r *rand.Rand) string {
	n := 1 + r.Intn(20)
	b := make([]byte, n)
	for i := range b {
		b[i] = testAlphabet[r.Intn(len(testAlphabet))]
	}
	return string(b)
}

func TestIsBundle(t *testing.T) {
	cases := []struct {
		token string
		want  bool
	}{
		{"-vn", true},
		{"-amLpvqVh", true},
		{"-v", false},   // single short option, nothing to expand
		{"--vn", false}, // long option shape
		{"-", false},
		{"--", false},
		{"vn", false},
		{"-vz", false},  // z outside the alphabet
		{"-vqz", false}, // no partial membership
		{"-v=n", false},
	}
	for _, c := range cases {
		if got := IsBundle(c.token, testAlphabet); got != c.want {
			t.Errorf("IsBundle(%q, %q) == %v, want %v", c.token, testAlphabet, got, c.want)
		}
	}
}

func TestDisaggregate(t *testing.T) {
	got, err := Disaggregate("-vqa", testAlphabet)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if want := []string{"-v", "-q", "-a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Disaggregate == %v, want %v", got, want)
	}

	if _, err := Disaggregate("-vz", testAlphabet); err == nil {
		t.Error("expected error for token outside the alphabet")
	}
	if _, err := Disaggregate("--verbose", testAlphabet); err == nil {
		t.Error("expected error for long option token")
	}
}

func TestStrategiesOrder(t *testing.T) {
	var names []string
	for _, s := range Strategies() {
		names = append(names, s.Name())
	}
	want := []string{"External-line-split", "External-fixed-width", "In-process"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Strategies() order == %v, want %v", names, want)
	}
}

func BenchmarkWalk(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Walk{}.Expand("amLpvqVh")
	}
}

func BenchmarkGrepSplit(b *testing.B) {
	if _, err := exec.LookPath("grep"); err != nil {
		b.Skip("grep not available")
	}
	for i := 0; i < b.N; i++ {
		_, _ = GrepSplit{}.Expand("amLpvqVh")
	}
}

func BenchmarkFoldSplit(b *testing.B) {
	if _, err := exec.LookPath("fold"); err != nil {
		b.Skip("fold not available")
	}
	for i := 0; i < b.N; i++ {
		_, _ = FoldSplit{}.Expand("amLpvqVh")
	}
}
