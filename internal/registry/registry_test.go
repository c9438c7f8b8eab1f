package registry

import "testing"

func TestLookupCanonicalAndAlias(t *testing.T) {
	info, ok := Lookup("windows-1252")
	if !ok {
		t.Fatalf("expected windows-1252 to be registered")
	}
	if info.Name != "windows-1252" {
		t.Fatalf("got %q", info.Name)
	}

	info2, ok := Lookup("CP1252")
	if !ok || info2.Name != "windows-1252" {
		t.Fatalf("alias lookup failed: %+v ok=%v", info2, ok)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("not-a-real-encoding"); ok {
		t.Fatalf("expected unknown encoding to miss")
	}
}

func TestExists(t *testing.T) {
	if !Exists("") {
		t.Fatalf(`"" must satisfy Exists (the null-encoding sentinel)`)
	}
	if !Exists("utf-8") {
		t.Fatalf("utf-8 must be registered")
	}
	if Exists("definitely-not-registered") {
		t.Fatalf("unregistered name must not satisfy Exists")
	}
}

func TestByEraExcludesBOMOnly(t *testing.T) {
	all := ByEra(AllEras)
	for _, info := range all {
		switch info.Name {
		case "utf-8-sig", "utf-16-be", "utf-16-le", "utf-32-be", "utf-32-le":
			t.Fatalf("%q is BOM-only and must not appear in the candidate filter", info.Name)
		}
	}
}

func TestByEraFiltersByEra(t *testing.T) {
	dos := ByEra(DOS)
	if len(dos) == 0 {
		t.Fatalf("expected at least one DOS-era encoding")
	}
	for _, info := range dos {
		if info.Era != DOS {
			t.Fatalf("ByEra(DOS) returned non-DOS encoding %q", info.Name)
		}
	}
}

func TestSingleLanguage(t *testing.T) {
	info, ok := Lookup("iso-2022-jp")
	if !ok {
		t.Fatalf("expected iso-2022-jp registered")
	}
	lang, single := info.SingleLanguage()
	if !single || lang != "ja" {
		t.Fatalf("expected single language ja, got %q single=%v", lang, single)
	}

	multi, ok := Lookup("windows-1252")
	if !ok {
		t.Fatalf("expected windows-1252 registered")
	}
	if _, single := multi.SingleLanguage(); single {
		t.Fatalf("windows-1252 has multiple languages; SingleLanguage must report false")
	}
}

func TestNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, info := range All() {
		if seen[info.Name] {
			t.Fatalf("duplicate encoding name %q", info.Name)
		}
		seen[info.Name] = true
	}
}
