package orangerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rynaret/Orang/internal/orangerr"
)

func TestError_MessageFormatting(t *testing.T) {
	wrapped := errors.New("permission denied")
	err := orangerr.IO("/tmp/a.txt", orangerr.CausePermissionDenied, wrapped)

	assert.Equal(t, "/tmp/a.txt: IoError: permission denied", err.Error())
	assert.Equal(t, orangerr.ExitFailure, err.Code)
}

func TestError_Unwrap(t *testing.T) {
	wrapped := errors.New("boom")
	err := orangerr.Encoding("a.txt", wrapped)

	assert.True(t, errors.Is(err, wrapped))

	var target *orangerr.Error
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, orangerr.KindEncoding, target.Kind)
}

func TestError_NoPathOrWrapped(t *testing.T) {
	err := orangerr.OptionParse("bad flag combination")
	assert.Equal(t, "bad flag combination", err.Error())
}

func TestRenameConflict(t *testing.T) {
	err := orangerr.RenameConflict("/dst/report.txt")
	assert.Equal(t, orangerr.KindRenameConflict, err.Kind)
	assert.Contains(t, err.Error(), "/dst/report.txt")
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, orangerr.ExitSuccess, orangerr.CodeOf(nil))
	assert.Equal(t, orangerr.ExitFailure, orangerr.CodeOf(orangerr.Canceled()))
	assert.Equal(t, orangerr.ExitFailure, orangerr.CodeOf(errors.New("plain")))
}

func TestKind_String(t *testing.T) {
	cases := map[orangerr.Kind]string{
		orangerr.KindIO:             "IoError",
		orangerr.KindEncoding:       "EncodingError",
		orangerr.KindRegex:          "RegexError",
		orangerr.KindRenameConflict: "RenameConflict",
		orangerr.KindOptionParse:    "OptionParseError",
		orangerr.KindUnknownEnum:    "UnknownEnumValue",
		orangerr.KindCanceled:       "Canceled",
		orangerr.KindMaxReached:     "MaxReached",
	}
	for k, want := range cases {
		assert.Equal(t, want, k.String())
	}
}
