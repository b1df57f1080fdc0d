package apps

// IdentityKind tells which fields an Identity was derived from.
type IdentityKind int

const (
	ByID IdentityKind = iota + 1
	ByTitleDeveloper
)

const unknownField = "unknown"

// Identity is the deduplication key of an app record. Records with a package
// id are identified by it alone; the rest fall back to title and developer.
// It is comparable and can be used directly as a map key.
type Identity struct {
	Kind      IdentityKind
	AppID     string
	Title     string
	Developer string
}

// IdentityOf derives the identity of a record. Missing title or developer
// become "unknown", so two anonymous records still collide with each other.
func IdentityOf(a AppSummary) Identity {
	if a.AppID != "" {
		return Identity{Kind: ByID, AppID: a.AppID}
	}
	title, developer := a.Title, a.Developer
	if title == "" {
		title = unknownField
	}
	if developer == "" {
		developer = unknownField
	}
	return Identity{Kind: ByTitleDeveloper, Title: title, Developer: developer}
}

func (id Identity) String() string {
	if id.Kind == ByID {
		return "pkg:" + id.AppID
	}
	return "title:" + id.Title + "::" + id.Developer
}
