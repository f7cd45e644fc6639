package printer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader(t *testing.T) {
	want := "\n\n==================== File: ./src/App.vue ====================\n"
	assert.Equal(t, want, Header("./src/App.vue"))
	assert.Equal(t, 20, strings.Count(strings.SplitN(Header("x"), " ", 2)[0], "="))
}

func TestPrintFileWritesRawContent(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	require.NoError(t, p.PrintFile("a.vue", []byte("<template>\r\n</template>")))
	require.NoError(t, p.PrintFile("b.ts", nil))
	require.NoError(t, p.Flush())

	want := Header("a.vue") + "<template>\r\n</template>" + Header("b.ts")
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 2, p.GetCount())
}

func TestPrintErrorWritesOneDiagnosticLine(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	require.NoError(t, p.PrintError("bad.ts", errors.New("open bad.ts: permission denied\nretry later")))
	require.NoError(t, p.Flush())

	want := Header("bad.ts") + "// [Error reading file]: open bad.ts: permission denied retry later\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 1, p.GetCount())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestFlushSurfacesWriteErrors(t *testing.T) {
	p := New(failingWriter{})
	require.NoError(t, p.PrintFile("a.ts", []byte("x")))

	err := p.Flush()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestEmptyPrinterWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)
	require.NoError(t, p.Flush())
	assert.Zero(t, buf.Len())
	assert.Zero(t, p.GetCount())
}
