package models

// Industry is a master-data row as the backend returns it.
type Industry struct {
	CategoryID   string `json:"category_id"`
	CategoryCode string `json:"category_code"`
	CategoryName string `json:"category_name"`
	Description  string `json:"description,omitempty"`
	IsDefault    int    `json:"is_default"`
	SortOrder    int    `json:"sort_order"`
}

// AlcoholType is a master-data row as the backend returns it.
type AlcoholType struct {
	TypeID      string `json:"type_id"`
	TypeCode    string `json:"type_code"`
	TypeName    string `json:"type_name"`
	Description string `json:"description,omitempty"`
	IsDefault   int    `json:"is_default"`
	SortOrder   int    `json:"sort_order"`
}

// MasterDataItem is the flattened form the rest of the client works with.
type MasterDataItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// MasterDataItemFromIndustry flattens an Industry row.
func MasterDataItemFromIndustry(in Industry) MasterDataItem {
	return MasterDataItem{ID: in.CategoryID, Name: in.CategoryName, Description: in.Description}
}

// MasterDataItemFromAlcoholType flattens an AlcoholType row.
func MasterDataItemFromAlcoholType(at AlcoholType) MasterDataItem {
	return MasterDataItem{ID: at.TypeID, Name: at.TypeName, Description: at.Description}
}
