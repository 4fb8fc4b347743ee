package survey

import (
	"time"

	"github.com/lib/pq"
)

type GeneralSurvey struct {
	ID                   uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName             string         `gorm:"size:255;not null;column:full_name" json:"full_name"`
	DOB                  string         `gorm:"size:20;column:dob" json:"dob"`
	Age                  int            `json:"age"`
	Gender               string         `gorm:"size:20" json:"gender"`
	AdharNumber          string         `gorm:"size:20;column:adhar_number" json:"adhar_number"`
	Diseases             pq.StringArray `gorm:"type:text[]" json:"diseases"`
	Education            string         `gorm:"size:100" json:"education"`
	Caste                string         `gorm:"size:100" json:"caste"`
	PregnantWomanPresent string         `gorm:"size:5;default:No;column:pregnant_woman_present" json:"pregnant_woman_present"`
	MobileNo             string         `gorm:"size:15;column:mobile_no" json:"mobile_no"`
	KidsInfo             string         `gorm:"type:text;column:kids_info" json:"kids_info"`
	CreatedAt            time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (GeneralSurvey) TableName() string {
	return "general_surveys"
}

// ANCSurvey keeps the legacy flat schema: demographics and pregnancy
// fields live in one row. Household registrations write the normalized
// member_anc_records table instead (see internal/household).
type ANCSurvey struct {
	ID                uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName          string         `gorm:"size:255;not null;column:full_name" json:"full_name"`
	DOB               string         `gorm:"size:20;column:dob" json:"dob"`
	Age               int            `json:"age"`
	Gender            string         `gorm:"size:20" json:"gender"`
	AdharNumber       string         `gorm:"size:20;column:adhar_number" json:"adhar_number"`
	Diseases          pq.StringArray `gorm:"type:text[]" json:"diseases"`
	Education         string         `gorm:"size:100" json:"education"`
	Caste             string         `gorm:"size:100" json:"caste"`
	MobileNo          string         `gorm:"size:15;column:mobile_no" json:"mobile_no"`
	LMPDate           string         `gorm:"size:20;column:lmp_date" json:"lmp_date"`
	ChildrenNo        int            `gorm:"column:children_no" json:"children_no"`
	PregnancyMonth    int            `gorm:"column:pregnancy_month" json:"pregnancy_month"`
	ANCVisits         int            `gorm:"column:anc_visits" json:"anc_visits"`
	TetanusInjection  string         `gorm:"size:5;default:No;column:tetanus_injection" json:"tetanus_injection"`
	IronSupplements   string         `gorm:"size:5;default:No;column:iron_supplements" json:"iron_supplements"`
	SAMStatus         string         `gorm:"size:5;default:No;column:sam_status" json:"sam_status"`
	MAMStatus         string         `gorm:"size:5;default:No;column:mam_status" json:"mam_status"`
	ThalassemiaStatus string         `gorm:"size:5;default:No;column:thalassemia_status" json:"thalassemia_status"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (ANCSurvey) TableName() string {
	return "anc_surveys"
}

type CreateGeneralSurveyRequest struct {
	FullName             string   `json:"full_name" binding:"required"`
	DOB                  string   `json:"dob" binding:"required"`
	Age                  int      `json:"age"`
	Gender               string   `json:"gender" binding:"required"`
	AdharNumber          string   `json:"adhar_number" binding:"required"`
	Diseases             []string `json:"diseases"`
	Education            string   `json:"education"`
	Caste                string   `json:"caste"`
	PregnantWomanPresent string   `json:"pregnant_woman_present"`
	MobileNo             string   `json:"mobile_no" binding:"required"`
	KidsInfo             string   `json:"kids_info"`
}

type ANCDetails struct {
	LMPDate           string `json:"lmp_date"`
	ChildrenNo        int    `json:"children_no"`
	PregnancyMonth    int    `json:"pregnancy_month" binding:"omitempty,min=1,max=9"`
	ANCVisits         int    `json:"anc_visits"`
	TetanusInjection  string `json:"tetanus_injection"`
	IronSupplements   string `json:"iron_supplements"`
	SAMStatus         string `json:"sam_status"`
	MAMStatus         string `json:"mam_status"`
	ThalassemiaStatus string `json:"thalassemia_status"`
}

// CreateANCSurveyRequest mirrors the intake form: demographics at the
// top level plus an anc_details sub-object that gets flattened into the
// stored row.
type CreateANCSurveyRequest struct {
	FullName    string     `json:"full_name" binding:"required"`
	DOB         string     `json:"dob" binding:"required"`
	Age         int        `json:"age"`
	Gender      string     `json:"gender" binding:"required"`
	AdharNumber string     `json:"adhar_number" binding:"required"`
	Diseases    []string   `json:"diseases"`
	Education   string     `json:"education"`
	Caste       string     `json:"caste"`
	MobileNo    string     `json:"mobile_no" binding:"required"`
	ANCDetails  ANCDetails `json:"anc_details"`
}
