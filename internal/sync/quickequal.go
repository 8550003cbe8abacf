package sync

import (
	"io"
	"os"

	"github.com/zeebo/xxh3"

	"github.com/Rynaret/Orang/internal/orangerr"
)

// quickHash returns a fast, non-cryptographic content digest used to thin
// out rename-detection candidates before paying for a full byte-for-byte
// comparison. Candidates with different sizes never reach this; candidates
// with equal size and equal hash still get the full chunked compare as a
// tie-breaker, since xxh3 is not collision-proof.
func quickHash(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, orangerr.IO(path, orangerr.CauseReadFailed, err)
	}
	defer f.Close()

	h := xxh3.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, orangerr.IO(path, orangerr.CauseReadFailed, err)
	}
	return h.Sum64(), nil
}
