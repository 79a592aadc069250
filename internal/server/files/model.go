package files

// Record kinds. Folders structure the hierarchy and never carry content;
// files and images always reference stored content.
const (
	KindFolder = "folder"
	KindFile   = "file"
	KindImage  = "image"
)

// RootParentID is the sentinel parent reference meaning "no parent". Root is
// a virtual folder, not a stored record.
const RootParentID = "0"

func ValidKind(kind string) bool {
	switch kind {
	case KindFolder, KindFile, KindImage:
		return true
	}
	return false
}

// File is a stored metadata record for a folder, file or image. LocalPath is
// the blob store handle for non-folder kinds and is never exposed to clients.
type File struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	IsPublic  bool   `json:"isPublic"`
	ParentID  string `json:"parentId"`
	LocalPath string `json:"-"`
}
