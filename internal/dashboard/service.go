package dashboard

import (
	"errors"
	"strings"

	"healthpulse-api/internal/household"
	"healthpulse-api/internal/survey"

	"gorm.io/gorm"
)

type DashboardService struct {
	DB *gorm.DB
}

// Overview pulls the full survey sets and recomputes every stat in
// memory on each call, matching what the dashboard always showed.
func (ds *DashboardService) Overview() (*OverviewResponse, error) {
	var generals []survey.GeneralSurvey
	if err := ds.DB.Find(&generals).Error; err != nil {
		return nil, err
	}
	var ancs []survey.ANCSurvey
	if err := ds.DB.Find(&ancs).Error; err != nil {
		return nil, err
	}
	var households []household.Household
	if err := ds.DB.Find(&households).Error; err != nil {
		return nil, err
	}

	var members int64
	if err := ds.DB.Model(&household.HouseholdMember{}).Count(&members).Error; err != nil {
		return nil, err
	}

	critical := 0
	for _, a := range ancs {
		if a.SAMStatus == "Yes" || a.ThalassemiaStatus == "Yes" {
			critical++
		}
	}

	villages := map[string]struct{}{}
	for _, h := range households {
		villages[h.Village] = struct{}{}
	}

	return &OverviewResponse{
		TotalGeneral:    len(generals),
		TotalANC:        len(ancs),
		TotalHouseholds: len(households),
		TotalMembers:    int(members),
		CriticalCount:   critical,
		Villages:        len(villages),
	}, nil
}

// FilterGeneral keeps rows whose name contains the query (case folded)
// or whose adhar number contains it verbatim. An empty query keeps
// everything.
func FilterGeneral(rows []survey.GeneralSurvey, query string) []survey.GeneralSurvey {
	if strings.TrimSpace(query) == "" {
		return rows
	}
	q := strings.ToLower(query)
	out := make([]survey.GeneralSurvey, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.FullName), q) || strings.Contains(r.AdharNumber, query) {
			out = append(out, r)
		}
	}
	return out
}

func FilterANC(rows []survey.ANCSurvey, query string) []survey.ANCSurvey {
	if strings.TrimSpace(query) == "" {
		return rows
	}
	q := strings.ToLower(query)
	out := make([]survey.ANCSurvey, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.FullName), q) || strings.Contains(r.AdharNumber, query) {
			out = append(out, r)
		}
	}
	return out
}

func (ds *DashboardService) SearchGeneral(query string) ([]survey.GeneralSurvey, error) {
	var rows []survey.GeneralSurvey
	if err := ds.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return FilterGeneral(rows, query), nil
}

func (ds *DashboardService) SearchANC(query string) ([]survey.ANCSurvey, error) {
	var rows []survey.ANCSurvey
	if err := ds.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return FilterANC(rows, query), nil
}

func (ds *DashboardService) ListVillages() ([]VillageSummary, error) {
	var out []VillageSummary
	err := ds.DB.Model(&household.Household{}).
		Select("village, COUNT(*) AS households").
		Group("village").
		Order("village ASC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (ds *DashboardService) ListHouseholds(village string) ([]HouseholdSummary, error) {
	var rows []household.Household
	if err := ds.DB.Preload("Members").Where("village = ?", village).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]HouseholdSummary, 0, len(rows))
	for _, h := range rows {
		out = append(out, HouseholdSummary{
			ID:       h.ID,
			Village:  h.Village,
			HouseNo:  h.HouseNo,
			HeadName: h.HeadName,
			MobileNo: h.MobileNo,
			Members:  len(h.Members),
		})
	}
	return out, nil
}

func (ds *DashboardService) ListResidents(householdID uint) ([]household.HouseholdMember, error) {
	var rows []household.HouseholdMember
	if err := ds.DB.Where("household_id = ?", householdID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ResidentANC looks up the member's normalized ANC record. A member who
// is not flagged pregnant, or whose record was never written, answers
// found=false instead of an error.
func (ds *DashboardService) ResidentANC(memberID uint) (*ResidentANCResponse, error) {
	var member household.HouseholdMember
	if err := ds.DB.First(&member, memberID).Error; err != nil {
		return nil, err
	}
	if member.Pregnant != "Yes" {
		return &ResidentANCResponse{Found: false}, nil
	}

	var rec household.MemberANCRecord
	err := ds.DB.Where("member_id = ?", memberID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ResidentANCResponse{Found: false}, nil
	}
	if err != nil {
		return nil, err
	}
	return &ResidentANCResponse{Found: true, Record: &rec}, nil
}

// Drill validates the incoming trail, applies the requested transition
// and loads the rows for the resulting frame.
func (ds *DashboardService) Drill(req DrillRequest) (*DrillResponse, error) {
	if err := req.State.Validate(); err != nil {
		return nil, NavError(err.Error())
	}

	var next State
	var err error
	switch req.Action {
	case "village":
		next, err = req.State.DrillToVillage(req.Village)
	case "household":
		next, err = req.State.DrillToHousehold(req.HouseholdID)
	case "back":
		next = req.State.Back()
	case "jump":
		next, err = req.State.JumpTo(req.Index)
	default:
		return nil, NavError("unknown drill action: " + req.Action)
	}
	if err != nil {
		return nil, NavError(err.Error())
	}

	resp := &DrillResponse{State: next, Breadcrumbs: next.Breadcrumbs()}
	switch next.Level {
	case LevelVillages:
		resp.Villages, err = ds.ListVillages()
	case LevelHouseholds:
		resp.Households, err = ds.ListHouseholds(next.Village)
	case LevelResidents:
		resp.Residents, err = ds.ListResidents(next.HouseholdID)
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}
