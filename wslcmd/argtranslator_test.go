package wslcmd

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_Translate_Passthrough_When_ConvertPaths_False(t *testing.T) {
	t.Parallel()

	in := []string{`C:\Users\a`, `rel\path`}

	got := Translate(in, false)
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("Translate with convertPaths=false mismatch (-want +got):\n%s", diff)
	}
}

// Test_Translate_Scenario_3 reproduces spec.md §8 scenario 3: the first
// argument is drive-letter absolute and gets wrapped, the second is
// relative and passes through, the third is UNC-shaped and is therefore
// left unwrapped even though it's absolute in the Windows sense. The
// expected backslash count on the third argument follows the run-reduction
// law applied literally (one backslash removed per run; see
// deescapeBackslashes), which for a run of exactly two leading
// backslashes leaves one, not two.
func Test_Translate_Scenario_3(t *testing.T) {
	t.Parallel()

	in := []string{`C:\Users\a`, `rel\path`, `\\server\s`}
	want := []string{`$(wslpath 'C:/Users/a')`, `rel/path`, `\server/s`}

	got := Translate(in, true)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Translate(scenario 3) mismatch (-want +got):\n%s", diff)
	}
}

func Test_Translate_Wraps_Unix_Absolute_Path(t *testing.T) {
	t.Parallel()

	got := Translate([]string{"/home/bob/file"}, true)
	want := []string{`$(wslpath '/home/bob/file')`}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func Test_Translate_Escapes_Single_Quotes(t *testing.T) {
	t.Parallel()

	got := Translate([]string{`C:\it's\here`}, true)
	want := []string{`$(wslpath 'C:/it'\''s/here')`}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// Test_Translate_Determinism exercises the "second pass is identity"
// property from spec.md §8: translate(translate(A, b), false) ==
// translate(A, b), since the first pass's output is already WSL-ready and
// convertPaths=false on the second pass is a pure passthrough.
func Test_Translate_Determinism(t *testing.T) {
	t.Parallel()

	vectors := [][]string{
		{`C:\Users\a`, `rel\path`, `\\server\s`},
		{"/already/unix", `\one`, `\\two`},
		{},
	}

	for _, a := range vectors {
		for _, b := range []bool{true, false} {
			first := Translate(a, b)
			second := Translate(first, false)

			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("determinism violated for %v/%v (-first +second):\n%s", a, b, diff)
			}
		}
	}
}

// Test_DeescapeBackslashes_Run_Law exercises the backslash-run law from
// spec.md §4.3's worked examples: a lone backslash becomes "/"; any run of
// k>=2 backslashes loses exactly one backslash.
func Test_DeescapeBackslashes_Run_Law(t *testing.T) {
	t.Parallel()

	for k := 1; k <= 6; k++ {
		run := strings.Repeat(`\`, k)

		got := deescapeBackslashes(run)

		var want string
		if k == 1 {
			want = "/"
		} else {
			want = strings.Repeat(`\`, k-1)
		}

		if got != want {
			t.Errorf("deescapeBackslashes(%d backslashes) = %q, want %q", k, got, want)
		}
	}
}

func Test_DeescapeBackslashes_Leaves_Other_Characters(t *testing.T) {
	t.Parallel()

	got := deescapeBackslashes(`a\b\\c`)
	want := "a/b\\c"

	if got != want {
		t.Errorf("deescapeBackslashes = %q, want %q", got, want)
	}
}
