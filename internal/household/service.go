package household

import (
	"fmt"
	"log"
	"strings"
	"time"

	"healthpulse-api/internal/survey"
	"healthpulse-api/internal/util"

	"gorm.io/gorm"
)

type HouseholdService struct {
	DB *gorm.DB

	// Now is overridable so age derivation is deterministic in tests.
	Now func() time.Time
}

func (s *HouseholdService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// NormalizeMembers fits the member slice to the declared count: extra
// rows beyond the count are dropped, missing rows are padded as blanks.
// A non-positive count falls back to the length of the slice.
func NormalizeMembers(count int, members []MemberInput) []MemberInput {
	if count <= 0 {
		count = len(members)
	}
	out := make([]MemberInput, count)
	copy(out, members)
	return out
}

// Register runs the full household registration pipeline: normalize the
// member list, mirror the head name with member 0, derive ages, validate,
// then persist household, members, general side records and ANC records
// as a saga with best-effort rollback on failure.
func (s *HouseholdService) Register(req RegisterHouseholdRequest) (*RegisterHouseholdResponse, error) {
	members := NormalizeMembers(req.MemberCount, req.Members)
	if len(members) == 0 {
		return nil, ValidationError("a household must have at least one member")
	}

	// The head of household and member 0 are the same person; whichever
	// name was filled in wins.
	if strings.TrimSpace(req.HeadName) == "" {
		req.HeadName = members[0].FullName
	}
	if strings.TrimSpace(members[0].FullName) == "" {
		members[0].FullName = req.HeadName
	}

	today := s.now()
	for i := range members {
		members[i].FullName = strings.TrimSpace(members[i].FullName)
		members[i].AdharNumber = strings.TrimSpace(members[i].AdharNumber)
		members[i].Pregnant = util.YesNo(members[i].Pregnant)
	}

	if err := validateRegistration(req, members); err != nil {
		return nil, err
	}

	ages := make([]int, len(members))
	for i, m := range members {
		if m.DOB == "" {
			continue
		}
		age, err := util.AgeOn(m.DOB, today)
		if err != nil {
			return nil, ValidationError(fmt.Sprintf("member %d has an invalid date of birth", i+1))
		}
		ages[i] = age
	}

	hh := Household{
		Village:     req.Village,
		HouseNo:     req.HouseNo,
		HeadName:    req.HeadName,
		MobileNo:    req.MobileNo,
		Boys0to5:    req.Boys0to5,
		Girls0to5:   req.Girls0to5,
		Boys6to10:   req.Boys6to10,
		Girls6to10:  req.Girls6to10,
		Boys11to17:  req.Boys11to17,
		Girls11to17: req.Girls11to17,
	}

	inserted := make([]HouseholdMember, len(members))
	var sideCreated, ancCreated int

	steps := []sagaStep{
		{
			name: "household",
			run: func() error {
				return s.DB.Create(&hh).Error
			},
			compensate: func() error {
				return s.DB.Delete(&Household{}, hh.ID).Error
			},
		},
	}

	for i := range members {
		i := i
		m := members[i]
		steps = append(steps, sagaStep{
			name: fmt.Sprintf("member[%d]", i),
			run: func() error {
				row := HouseholdMember{
					HouseholdID:    hh.ID,
					FullName:       m.FullName,
					DOB:            m.DOB,
					Age:            ages[i],
					Gender:         m.Gender,
					RelationToHead: m.RelationToHead,
					Education:      m.Education,
					Caste:          m.Caste,
					Diseases:       m.Diseases,
					Pregnant:       m.Pregnant,
				}
				if m.AdharNumber != "" {
					adhar := m.AdharNumber
					row.AdharNumber = &adhar
				}
				if err := s.DB.Create(&row).Error; err != nil {
					if isUniqueViolation(err) {
						return &DuplicateAdharError{AdharNumber: m.AdharNumber}
					}
					return err
				}
				inserted[i] = row
				return nil
			},
			compensate: func() error {
				return s.DB.Delete(&HouseholdMember{}, inserted[i].ID).Error
			},
		})
	}

	// Each member also gets a flat general_surveys row so the existing
	// survey listings and exports see household registrations without a
	// join. This duplication is deliberate; both writes sit inside the
	// same saga.
	for i := range members {
		i := i
		m := members[i]
		var sideID uint
		steps = append(steps, sagaStep{
			name: fmt.Sprintf("side-record[%d]", i),
			run: func() error {
				side := survey.GeneralSurvey{
					FullName:             m.FullName,
					DOB:                  m.DOB,
					Age:                  ages[i],
					Gender:               m.Gender,
					AdharNumber:          m.AdharNumber,
					Diseases:             m.Diseases,
					Education:            m.Education,
					Caste:                m.Caste,
					PregnantWomanPresent: m.Pregnant,
					MobileNo:             req.MobileNo,
				}
				if err := s.DB.Create(&side).Error; err != nil {
					return err
				}
				sideID = side.ID
				sideCreated++
				return nil
			},
			compensate: func() error {
				return s.DB.Delete(&survey.GeneralSurvey{}, sideID).Error
			},
		})
	}

	for i := range members {
		i := i
		m := members[i]
		if !strings.EqualFold(m.Gender, "female") || m.Pregnant != "Yes" {
			continue
		}
		var ancID uint
		steps = append(steps, sagaStep{
			name: fmt.Sprintf("anc-record[%d]", i),
			run: func() error {
				rec := MemberANCRecord{
					MemberID:          inserted[i].ID,
					TetanusInjection:  "No",
					IronSupplements:   "No",
					SAMStatus:         "No",
					MAMStatus:         "No",
					ThalassemiaStatus: "No",
				}
				if d := m.ANCDetails; d != nil {
					rec.LMPDate = d.LMPDate
					rec.ChildrenNo = d.ChildrenNo
					rec.PregnancyMonth = d.PregnancyMonth
					rec.ANCVisits = d.ANCVisits
					rec.TetanusInjection = util.YesNo(d.TetanusInjection)
					rec.IronSupplements = util.YesNo(d.IronSupplements)
					rec.SAMStatus = util.YesNo(d.SAMStatus)
					rec.MAMStatus = util.YesNo(d.MAMStatus)
					rec.ThalassemiaStatus = util.YesNo(d.ThalassemiaStatus)
				}
				if err := s.DB.Create(&rec).Error; err != nil {
					return err
				}
				ancID = rec.ID
				ancCreated++
				return nil
			},
			compensate: func() error {
				return s.DB.Delete(&MemberANCRecord{}, ancID).Error
			},
		})
	}

	err := runSaga(steps, func(step string, cerr error) {
		log.Printf("household registration rollback failed at %s: %v", step, cerr)
	})
	if err != nil {
		return nil, err
	}

	hh.Members = inserted
	return &RegisterHouseholdResponse{
		Household:          hh,
		MembersCreated:     len(inserted),
		SideRecordsCreated: sideCreated,
		ANCRecordsCreated:  ancCreated,
	}, nil
}

func validateRegistration(req RegisterHouseholdRequest, members []MemberInput) error {
	mobile := strings.TrimSpace(req.MobileNo)
	if len(mobile) != 10 || util.DigitsOnly(mobile) != mobile {
		return ValidationError("mobile number must be exactly 10 digits")
	}

	seen := map[string]int{}
	for i, m := range members {
		if m.AdharNumber == "" {
			continue
		}
		if prev, ok := seen[m.AdharNumber]; ok {
			return ValidationError(fmt.Sprintf("members %d and %d share the same adhar number", prev+1, i+1))
		}
		seen[m.AdharNumber] = i
	}
	return nil
}

func (s *HouseholdService) GetHouseholds() ([]Household, error) {
	var rows []Household
	if err := s.DB.Preload("Members").Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint")
}
