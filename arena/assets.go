package arena

const (
	PlayerSprite = "sprites/ball_blue_large.png"
	EnemySprite  = "sprites/ball_red_large.png"
)

// TextureHandle is an opaque reference to a loaded texture. The zero value
// refers to no texture.
type TextureHandle uint32

// AssetServer resolves asset paths to texture handles.
type AssetServer interface {
	Load(path string) TextureHandle
}

// AssetTable hands out one stable handle per path. It loads nothing; hosts
// embed it and resolve the path of a handle when they first draw it.
type AssetTable struct {
	handles map[string]TextureHandle
	paths   []string
}

func NewAssetTable() *AssetTable {
	return &AssetTable{handles: make(map[string]TextureHandle)}
}

func (t *AssetTable) Load(path string) TextureHandle {
	if handle, ok := t.handles[path]; ok {
		return handle
	}
	t.paths = append(t.paths, path)
	handle := TextureHandle(len(t.paths))
	t.handles[path] = handle
	return handle
}

// Path returns the path a handle was issued for.
func (t *AssetTable) Path(handle TextureHandle) (string, bool) {
	if handle == 0 || int(handle) > len(t.paths) {
		return "", false
	}
	return t.paths[handle-1], true
}
