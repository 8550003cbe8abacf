package sync

import "testing"

// Exhaustive check of the source-kind / destination-state / preferLeft
// decision table.
func TestDecide_Table(t *testing.T) {
	cases := []struct {
		name       string
		srcIsDir   bool
		dst        dstState
		preferLeft bool
		want       Action
	}{
		{"dir/dir preferLeft", true, dstIsDir, true, ActionUpdateDstAttrs},
		{"dir/dir preferRight", true, dstIsDir, false, ActionUpdateSrcAttrs},
		{"dir/file preferLeft", true, dstIsFile, true, ActionDeleteDstFileCreateDstDir},
		{"dir/file preferRight", true, dstIsFile, false, ActionDeleteSrcDirCopyDstFile},
		{"dir/missing preferLeft", true, dstMissing, true, ActionCreateDstDir},
		{"dir/missing preferRight", true, dstMissing, false, ActionDeleteSrcDir},
		{"file/file preferLeft", false, dstIsFile, true, ActionOverwriteDst},
		{"file/file preferRight", false, dstIsFile, false, ActionOverwriteSrc},
		{"file/dir preferLeft", false, dstIsDir, true, ActionDeleteDstDirCopySrcFile},
		{"file/dir preferRight", false, dstIsDir, false, ActionDeleteSrcFileCreateSrcDirFromDst},
		{"file/missing preferLeft", false, dstMissing, true, ActionCopySrcToDst},
		{"file/missing preferRight", false, dstMissing, false, ActionDeleteSrc},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := decide(c.srcIsDir, c.dst, c.preferLeft)
			if got != c.want {
				t.Errorf("decide(%v, %v, %v) = %v, want %v", c.srcIsDir, c.dst, c.preferLeft, got, c.want)
			}
		})
	}
}

func TestConflictResolution_Invert(t *testing.T) {
	if LeftWins.Invert() != RightWins {
		t.Error("LeftWins should invert to RightWins")
	}
	if RightWins.Invert() != LeftWins {
		t.Error("RightWins should invert to LeftWins")
	}
	if Ask.Invert() != Ask {
		t.Error("Ask should remain Ask under inversion")
	}
}
