package classify

import "testing"

func TestParseImageType_CoversTable(t *testing.T) {
	for _, ext := range ImageFormats {
		if _, ok := ParseImageType(ext); !ok {
			t.Errorf("ParseImageType(%q) not resolvable", ext)
		}
	}
	if _, ok := ParseImageType("doc"); ok {
		t.Error("ParseImageType(doc) should fail")
	}
}

func TestParseExecType_CoversTable(t *testing.T) {
	for _, ext := range ExecutableFormats {
		if _, ok := ParseExecType(ext); !ok {
			t.Errorf("ParseExecType(%q) not resolvable", ext)
		}
	}
}

func TestParsePropType(t *testing.T) {
	tests := map[string]PropType{
		"psd":  PropPSD,
		"ind":  PropINDD,
		"indt": PropINDD,
		"indd": PropINDD,
		"ai":   PropAI,
	}
	for ext, want := range tests {
		if got := MustPropType(ext); got != want {
			t.Errorf("MustPropType(%q) = %v, want %v", ext, got, want)
		}
	}
	for _, ext := range ProprietaryFormats {
		if _, ok := ParsePropType(ext); !ok {
			t.Errorf("ParsePropType(%q) not resolvable", ext)
		}
	}
}

func TestMust_PanicsOnUnknown(t *testing.T) {
	tests := map[string]func(){
		"image":       func() { MustImageType("doc") },
		"executable":  func() { MustExecType("sh") },
		"proprietary": func() { MustPropType("sketch") },
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			fn()
		})
	}
}

func TestFileType_Accessors(t *testing.T) {
	img := ImageFile(PNG)
	if got, ok := img.Image(); !ok || got != PNG {
		t.Errorf("Image() = %v, %v, want PNG, true", got, ok)
	}
	if _, ok := img.Executable(); ok {
		t.Error("image FileType should not report an executable")
	}
	if _, ok := img.Proprietary(); ok {
		t.Error("image FileType should not report a proprietary format")
	}

	exe := ExecutableFile(BAT)
	if got, ok := exe.Executable(); !ok || got != BAT {
		t.Errorf("Executable() = %v, %v, want BAT, true", got, ok)
	}

	prop := ProprietaryFile(PropAI)
	if got, ok := prop.Proprietary(); !ok || got != PropAI {
		t.Errorf("Proprietary() = %v, %v, want AI, true", got, ok)
	}

	if !Unknown.IsUnknown() || img.IsUnknown() {
		t.Error("IsUnknown() mismatch")
	}
	if AudioFile().Kind != KindAudio {
		t.Error("AudioFile() should have KindAudio")
	}
}

func TestFileType_String(t *testing.T) {
	tests := []struct {
		ft   FileType
		want string
	}{
		{Unknown, "unknown"},
		{ImageFile(JPEG), "image(JPEG)"},
		{ExecutableFile(EXE), "executable(EXE - Windows Executable)"},
		{ProprietaryFile(PropINDD), "proprietary(INDD)"},
		{AudioFile(), "audio"},
	}
	for _, tt := range tests {
		if got := tt.ft.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	for k := KindUnknown; k <= KindAudio; k++ {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v, want %v", k.String(), got, ok, k)
		}
	}
	if got, ok := ParseKind(" Image "); !ok || got != KindImage {
		t.Errorf("ParseKind should trim and fold case, got %v, %v", got, ok)
	}
	if _, ok := ParseKind("video"); ok {
		t.Error("ParseKind(video) should fail")
	}
	if got := Kind(42).String(); got != "Kind(42)" {
		t.Errorf("String() = %q, want Kind(42)", got)
	}
}
