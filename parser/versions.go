package parser

// VersionFamily identifies which OAS version family a document declares.
type VersionFamily int

const (
	// FamilyNone means the document declares neither swagger nor openapi.
	// Such documents are merged loosely: no version check is enforced for them.
	FamilyNone VersionFamily = iota
	// FamilySwagger2 covers the 2.x family declared via the swagger field
	FamilySwagger2
	// FamilyOpenAPI3 covers the 3.x family declared via the openapi field
	FamilyOpenAPI3
)

// String returns the canonical name of the version family.
func (f VersionFamily) String() string {
	switch f {
	case FamilySwagger2:
		return "swagger"
	case FamilyOpenAPI3:
		return "openapi"
	default:
		return "none"
	}
}

// VersionFamily reports the version family the document declares. A document
// declaring both tags is malformed; the 2.x tag wins for consistency with
// the merge engine's check order.
func (d *Document) VersionFamily() VersionFamily {
	switch {
	case d.Swagger != "":
		return FamilySwagger2
	case d.OpenAPI != "":
		return FamilyOpenAPI3
	default:
		return FamilyNone
	}
}

// VersionTag returns the declared version string, or "" if the document
// declares neither family.
func (d *Document) VersionTag() string {
	if d.Swagger != "" {
		return d.Swagger
	}
	return d.OpenAPI
}
