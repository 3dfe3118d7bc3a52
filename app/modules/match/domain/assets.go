package matchdomain

// Static media served alongside match results.
const (
	GoalSFX    = "/static/assets/goal.ogg"
	CrowdCheer = "/static/assets/crowd.ogg"
)

// KeyMomentMedia are the local celebratory animations attached to goals.
var KeyMomentMedia = []string{
	"/static/assets/gif1.webp",
	"/static/assets/gif2.webp",
	"/static/assets/gif3.webp",
}

// FallbackMedia substitutes for a local animation that is not available.
var FallbackMedia = []string{
	"https://media.giphy.com/media/3o6ZtaO9BZHcOjmErm/giphy.gif",
	"https://media.giphy.com/media/l0MYt5jPR6QX5pnqM/giphy.gif",
	"https://media.giphy.com/media/26FPJWvYk8Z1nNvNK/giphy.gif",
}

// Assets are the sound effects returned with every result.
type Assets struct {
	GoalSFX    string `json:"goal_sfx"`
	CrowdCheer string `json:"crowd_cheer"`
}

// DefaultAssets returns the goal and crowd sound effects.
func DefaultAssets() Assets {
	return Assets{GoalSFX: GoalSFX, CrowdCheer: CrowdCheer}
}

// AssetResolver maps a local media path to a servable URL.
type AssetResolver interface {
	ResolveMedia(localPath string) string
}
