package survey

import (
	"healthpulse-api/internal/util"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type SurveyService struct {
	DB *gorm.DB
}

func (s *SurveyService) GetGeneralSurveys() ([]GeneralSurvey, error) {
	var surveys []GeneralSurvey
	result := s.DB.Order("created_at DESC").Find(&surveys)
	if result.Error != nil {
		return nil, result.Error
	}
	return surveys, nil
}

func (s *SurveyService) CreateGeneralSurvey(req CreateGeneralSurveyRequest) (*GeneralSurvey, error) {
	row := GeneralSurvey{
		FullName:             req.FullName,
		DOB:                  req.DOB,
		Age:                  req.Age,
		Gender:               req.Gender,
		AdharNumber:          req.AdharNumber,
		Diseases:             pq.StringArray(req.Diseases),
		Education:            req.Education,
		Caste:                req.Caste,
		PregnantWomanPresent: util.YesNo(req.PregnantWomanPresent),
		MobileNo:             req.MobileNo,
		KidsInfo:             req.KidsInfo,
	}

	if err := s.DB.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *SurveyService) GetANCSurveys() ([]ANCSurvey, error) {
	var surveys []ANCSurvey
	result := s.DB.Order("created_at DESC").Find(&surveys)
	if result.Error != nil {
		return nil, result.Error
	}
	return surveys, nil
}

func (s *SurveyService) CreateANCSurvey(req CreateANCSurveyRequest) (*ANCSurvey, error) {
	d := req.ANCDetails

	row := ANCSurvey{
		FullName:          req.FullName,
		DOB:               req.DOB,
		Age:               req.Age,
		Gender:            req.Gender,
		AdharNumber:       req.AdharNumber,
		Diseases:          pq.StringArray(req.Diseases),
		Education:         req.Education,
		Caste:             req.Caste,
		MobileNo:          req.MobileNo,
		LMPDate:           d.LMPDate,
		ChildrenNo:        d.ChildrenNo,
		PregnancyMonth:    d.PregnancyMonth,
		ANCVisits:         d.ANCVisits,
		TetanusInjection:  util.YesNo(d.TetanusInjection),
		IronSupplements:   util.YesNo(d.IronSupplements),
		SAMStatus:         util.YesNo(d.SAMStatus),
		MAMStatus:         util.YesNo(d.MAMStatus),
		ThalassemiaStatus: util.YesNo(d.ThalassemiaStatus),
	}

	if err := s.DB.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
