package sync

import (
	"context"
	"io"
	"os"

	"github.com/Rynaret/Orang/internal/orangerr"
)

// chunkSize is the cancellation-polling granularity for long-running byte
// comparisons: operations that may run long, like a file-equal byte
// comparison, poll the cancellation signal at chunk boundaries, not only
// between whole files.
const chunkSize = 64 * 1024

// filesEqual compares the contents of a and b chunk-by-chunk, returning
// early on the first mismatch and checking ctx for cancellation between
// chunks so a sync over very large files stays responsive to Ctrl-C.
func filesEqual(ctx context.Context, a, b string) (bool, error) {
	fa, err := os.Open(a)
	if err != nil {
		return false, orangerr.IO(a, orangerr.CauseReadFailed, err)
	}
	defer fa.Close()

	fb, err := os.Open(b)
	if err != nil {
		return false, orangerr.IO(b, orangerr.CauseReadFailed, err)
	}
	defer fb.Close()

	sa, err := fa.Stat()
	if err != nil {
		return false, orangerr.IO(a, orangerr.CauseReadFailed, err)
	}
	sb, err := fb.Stat()
	if err != nil {
		return false, orangerr.IO(b, orangerr.CauseReadFailed, err)
	}
	if sa.Size() != sb.Size() {
		return false, nil
	}

	bufA := make([]byte, chunkSize)
	bufB := make([]byte, chunkSize)
	for {
		select {
		case <-ctx.Done():
			return false, orangerr.Canceled()
		default:
		}

		na, errA := io.ReadFull(fa, bufA)
		nb, errB := io.ReadFull(fb, bufB)
		if na != nb {
			return false, nil
		}
		if na > 0 && string(bufA[:na]) != string(bufB[:nb]) {
			return false, nil
		}
		if errA == io.EOF || errA == io.ErrUnexpectedEOF {
			return errB == io.EOF || errB == io.ErrUnexpectedEOF, nil
		}
		if errA != nil {
			return false, orangerr.IO(a, orangerr.CauseReadFailed, errA)
		}
		if errB != nil {
			return false, orangerr.IO(b, orangerr.CauseReadFailed, errB)
		}
	}
}
