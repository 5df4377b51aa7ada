package types

type BuildingCategory int

const (
	CategoryResidential BuildingCategory = iota
	CategoryCommercial
	CategoryIndustrial
	CategoryCivic
)

func (c BuildingCategory) String() string {
	switch c {
	case CategoryResidential:
		return "residential"
	case CategoryCommercial:
		return "commercial"
	case CategoryIndustrial:
		return "industrial"
	case CategoryCivic:
		return "civic"
	}
	return "unknown"
}

// ParseCategory maps a catalog name to its building category.
func ParseCategory(name string) (BuildingCategory, bool) {
	switch name {
	case "residential":
		return CategoryResidential, true
	case "commercial":
		return CategoryCommercial, true
	case "industrial":
		return CategoryIndustrial, true
	case "civic":
		return CategoryCivic, true
	}
	return 0, false
}
