package objectc

// Visibility is the access level a PUBLIC/PROTECTED/PRIVATE/GLOBAL
// keyword assigns to one member declaration.
type Visibility int

const (
	VisPrivate Visibility = iota
	VisProtected
	VisPublic
	VisGlobal
)

// Member is one variable or function declared under a visibility
// keyword. Functions are distinguished from variables by the presence
// of Body (a `{…}` scope before the terminating `;`).
// The declaration is kept mostly as raw C++ text — this compiler's
// job is keyword structure, inheritance, and codegen wiring, not a
// full C++ type system — with just enough structure extracted (Name,
// Params, Body) to rewrite function definitions into
// `CoreObjects::Type_t::fn(args) { body }` form at emission time.
type Member struct {
	Visibility Visibility
	IsFunction bool
	IsDVAR     bool // GLOBAL(DVAR ...): static-definition-only, no extern in header
	Decl       string // e.g. "int x" or "void foo" (return type + name, no params/body)
	Name       string
	Params     string // function only: raw text between ( and )
	Body       string // function only: raw text between { and }
	Init       string // variable only: raw initializer text after '='
}

// Constructor is one CONSTRUCTOR(args) { body } pair. Exactly one
// default (empty Params) constructor is permitted.
type Constructor struct {
	Params string
	Body   string
}

// ObjectFile is one parsed `.object` definition.
type ObjectFile struct {
	SourcePath string
	Name       string
	Type       string // Name + "_t"
	NameParent string // defaults to "DEFAULT"
	Parent     *ObjectFile

	Children []*ObjectFile

	Events [EventCount]EventEntry

	Categories []string
	Friends    []string

	IncludesHeader []string
	IncludesSource []string

	Members      []Member
	Constructors []Constructor

	HasWrite, HasRead             bool
	WriteBody, ReadBody           string
	HasSerialize, HasDeserialize  bool
	SerializeBody, DeserializeBody string

	Versions []string

	Hash       uint64
	HashHex    string
	HashIsName bool

	Abstract   bool
	Networked  bool
	CountMax   int64
	BucketSize int64

	Depth   int
	Visited bool

	InheritedVariables []Member
	InheritedFunctions []Member
	InheritedEvents    [EventCount]bool
	InheritedCategories []string
	InheritedFriends    []string
}

// IsInstantiable reports whether the object can be constructed at
// runtime (non-abstract).
func (o *ObjectFile) IsInstantiable() bool { return !o.Abstract }

// defaultObjectSource is the embedded DEFAULT root object, fed through
// the same tokenizer/parser as user files rather than special-cased
// at emission time.
const defaultObjectSource = `
OBJECT(DEFAULT)
ABSTRACT(true)
PUBLIC ObjectInstance id;
EVENT_CREATE MANUAL {}
EVENT_DESTROY MANUAL {}
`
