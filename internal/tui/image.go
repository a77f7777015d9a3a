package tui

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"sync"
)

// ImageProtocol is the inline image protocol the terminal speaks.
type ImageProtocol int

const (
	ProtocolNone ImageProtocol = iota
	// ProtocolKitty is the Kitty graphics protocol, also spoken by Ghostty.
	ProtocolKitty
	ProtocolITerm2
)

// maxThumbnailBytes skips images too large to send inline on every frame.
const maxThumbnailBytes = 2 << 20

// DetectImageProtocol detects which terminal image protocol is supported.
func DetectImageProtocol() ImageProtocol {
	termProgram := os.Getenv("TERM_PROGRAM")
	switch {
	case strings.Contains(os.Getenv("TERM"), "kitty"), termProgram == "ghostty":
		return ProtocolKitty
	case termProgram == "iTerm.app":
		return ProtocolITerm2
	}
	return ProtocolNone
}

// thumbnails renders item and file images once per path.
type thumbnails struct {
	protocol ImageProtocol

	mu    sync.Mutex
	cache map[string]string
}

func newThumbnails(p ImageProtocol) *thumbnails {
	return &thumbnails{protocol: p, cache: map[string]string{}}
}

// Render returns the escape sequence showing the image at path, or ""
// when the terminal cannot show images or the file is unusable.
func (t *thumbnails) Render(path string) string {
	if t == nil || t.protocol == ProtocolNone || path == "" {
		return ""
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.cache[path]; ok {
		return s
	}
	s := renderImageFile(path, t.protocol)
	t.cache[path] = s
	return s
}

func renderImageFile(path string, p ImageProtocol) string {
	fi, err := os.Stat(path)
	if err != nil || fi.IsDir() || fi.Size() > maxThumbnailBytes {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	switch p {
	case ProtocolKitty:
		// a=T transmit and display, f=100 png/jpeg, t=d inline data
		return fmt.Sprintf("\x1b_Ga=T,f=100,t=d;%s\x1b\\", encoded)
	case ProtocolITerm2:
		return fmt.Sprintf("\x1b]1337;File=inline=1;width=24;preserveAspectRatio=1:%s\x07", encoded)
	}
	return ""
}
