package dashboard

import (
	"healthpulse-api/internal/household"
)

type OverviewResponse struct {
	TotalGeneral    int `json:"total_general"`
	TotalANC        int `json:"total_anc"`
	TotalHouseholds int `json:"total_households"`
	TotalMembers    int `json:"total_members"`
	CriticalCount   int `json:"critical_count"`
	Villages        int `json:"villages"`
}

type VillageSummary struct {
	Village    string `json:"village"`
	Households int    `json:"households"`
}

type HouseholdSummary struct {
	ID       uint   `json:"id"`
	Village  string `json:"village"`
	HouseNo  string `json:"house_no"`
	HeadName string `json:"head_name"`
	MobileNo string `json:"mobile_no"`
	Members  int    `json:"members"`
}

type ResidentANCResponse struct {
	Found  bool                       `json:"found"`
	Record *household.MemberANCRecord `json:"record,omitempty"`
}

type DrillRequest struct {
	State       State  `json:"state"`
	Action      string `json:"action" binding:"required"`
	Village     string `json:"village,omitempty"`
	HouseholdID uint   `json:"household_id,omitempty"`
	Index       int    `json:"index"`
}

type DrillResponse struct {
	State       State                        `json:"state"`
	Breadcrumbs []string                     `json:"breadcrumbs"`
	Villages    []VillageSummary             `json:"villages,omitempty"`
	Households  []HouseholdSummary           `json:"households,omitempty"`
	Residents   []household.HouseholdMember  `json:"residents,omitempty"`
}

type DownloadRequest struct {
	Dataset string `json:"dataset" binding:"required"`
	Format  string `json:"format"`
	Search  string `json:"search"`
}
