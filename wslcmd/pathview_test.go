package wslcmd

import "testing"

func Test_Basename_Strips_Extension(t *testing.T) {
	t.Parallel()

	if got := Basename("C:/tools/emacs.exe"); got != "emacs" {
		t.Errorf("Basename = %q, want %q", got, "emacs")
	}
}

func Test_Basename_Empty_Input_Is_Absent(t *testing.T) {
	t.Parallel()

	if got := Basename(""); got != "" {
		t.Errorf("Basename(\"\") = %q, want \"\"", got)
	}
}

func Test_Filename_Keeps_Extension(t *testing.T) {
	t.Parallel()

	if got := Filename("C:/tools/emacs.exe"); got != "emacs.exe" {
		t.Errorf("Filename = %q, want %q", got, "emacs.exe")
	}
}

func Test_Parent_Returns_Directory(t *testing.T) {
	t.Parallel()

	if got := Parent("C:/tools/emacs.exe"); got != "C:/tools" {
		t.Errorf("Parent = %q, want %q", got, "C:/tools")
	}
}

func Test_Extension_Is_Lowercased_And_Dotless(t *testing.T) {
	t.Parallel()

	if got := Extension("thing.EXE"); got != "exe" {
		t.Errorf("Extension = %q, want %q", got, "exe")
	}
}

func Test_Extension_Missing_Is_Absent(t *testing.T) {
	t.Parallel()

	if got := Extension("thing"); got != "" {
		t.Errorf("Extension = %q, want \"\"", got)
	}
}

func Test_IsAbsolute_Unix_Leading_Slash(t *testing.T) {
	t.Parallel()

	if !IsAbsolute("/home/bob") {
		t.Error("expected /home/bob to be absolute")
	}
}

func Test_IsAbsolute_Windows_Drive_Letter(t *testing.T) {
	t.Parallel()

	cases := []string{`C:\Users\a`, `C:/Users/a`, `z:\x`}

	for _, c := range cases {
		if !IsAbsolute(c) {
			t.Errorf("expected %q to be absolute", c)
		}
	}
}

// Test_IsAbsolute_Excludes_UNC confirms the deliberate exclusion of UNC
// paths from the absoluteness test, per spec.md §8 scenario 3 (a UNC-
// shaped argument is explicitly not wrapped by ArgTranslator).
func Test_IsAbsolute_Excludes_UNC(t *testing.T) {
	t.Parallel()

	if IsAbsolute(`\\server\share`) {
		t.Error(`expected \\server\share to NOT be absolute`)
	}
}

func Test_IsAbsolute_Rejects_Relative_And_Empty(t *testing.T) {
	t.Parallel()

	cases := []string{"", "rel/path", `rel\path`, "C", "C:"}

	for _, c := range cases {
		if IsAbsolute(c) {
			t.Errorf("expected %q to NOT be absolute", c)
		}
	}
}

func Test_Canonicalize_Resolves_Symlink_Chain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	target := dir + "/real.exe"
	if err := writeFile(target, "x"); err != nil {
		t.Fatalf("writeFile: %v", err)
	}

	hop1 := dir + "/hop1"
	hop2 := dir + "/hop2"

	if err := symlink(t, "real.exe", hop1); err != nil {
		t.Fatalf("symlink hop1: %v", err)
	}

	if err := symlink(t, "hop1", hop2); err != nil {
		t.Fatalf("symlink hop2: %v", err)
	}

	resolved, ok := Canonicalize(hop2)
	if !ok {
		t.Fatal("Canonicalize reported absent for a valid chain")
	}

	want, _ := Canonicalize(target)
	if resolved != want {
		t.Errorf("Canonicalize(hop2) = %q, want %q", resolved, want)
	}
}

func Test_Canonicalize_Missing_Target_Is_Absent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, ok := Canonicalize(dir + "/does-not-exist")
	if ok {
		t.Error("expected Canonicalize to report absent for a missing target")
	}
}

func Test_ReadDir_Lists_Full_Paths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	if err := writeFile(dir+"/a.exe", "x"); err != nil {
		t.Fatalf("writeFile: %v", err)
	}

	entries := ReadDir(dir)
	if len(entries) != 1 || Filename(entries[0]) != "a.exe" {
		t.Errorf("ReadDir(%q) = %v, want one entry named a.exe", dir, entries)
	}
}

func Test_ReadDir_Missing_Dir_Returns_Nil(t *testing.T) {
	t.Parallel()

	if got := ReadDir("/no/such/directory"); got != nil {
		t.Errorf("ReadDir on a missing dir = %v, want nil", got)
	}
}
