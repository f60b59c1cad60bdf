package model

// Scope holds the five user-supplied parameters that drive every cost and
// carbon scaling decision. The core never invents defaults; callers supply
// all fields, and range checks happen at the HTTP boundary.
type Scope struct {
	Users        int     `json:"users" binding:"required,min=1"`
	TrafficLevel int     `json:"trafficLevel" binding:"required,min=1,max=5"`
	DataVolumeGB float64 `json:"dataVolumeGB" binding:"min=0"`
	Regions      int     `json:"regions" binding:"required,min=1"`
	Availability float64 `json:"availability" binding:"required,min=0,max=100"`
}
