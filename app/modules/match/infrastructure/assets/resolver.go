package matchassets

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	matchdomain "github.com/Black-And-White-Club/anleague/app/modules/match/domain"
	"github.com/Black-And-White-Club/anleague/internal/random"
)

// FSResolver serves local media when the file exists under root and a
// remote fallback otherwise.
type FSResolver struct {
	root     string
	fallback []string

	mu  sync.Mutex
	rng random.Source
}

// NewFSResolver resolves paths relative to root, the directory holding static/.
func NewFSResolver(root string, rng random.Source) *FSResolver {
	return &FSResolver{
		root:     root,
		fallback: matchdomain.FallbackMedia,
		rng:      rng,
	}
}

// ResolveMedia returns localPath when it exists on disk.
func (r *FSResolver) ResolveMedia(localPath string) string {
	if r.exists(localPath) {
		return localPath
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return random.Pick(r.rng, r.fallback)
}

func (r *FSResolver) exists(localPath string) bool {
	if r.root == "" {
		return false
	}
	rel := filepath.Clean(strings.TrimPrefix(localPath, "/"))
	if rel == "." || strings.HasPrefix(rel, "..") {
		return false
	}
	info, err := os.Stat(filepath.Join(r.root, rel))
	return err == nil && !info.IsDir()
}

var _ matchdomain.AssetResolver = (*FSResolver)(nil)
