package household

import (
	"fmt"
	"time"

	"healthpulse-api/internal/survey"

	"github.com/lib/pq"
)

type Household struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Village    string    `gorm:"size:255;not null" json:"village"`
	HouseNo    string    `gorm:"size:50;column:house_no" json:"house_no"`
	HeadName   string    `gorm:"size:255;column:head_name" json:"head_name"`
	MobileNo   string    `gorm:"size:15;column:mobile_no" json:"mobile_no"`
	Boys0to5   int       `gorm:"column:boys_0_5" json:"boys_0_5"`
	Girls0to5  int       `gorm:"column:girls_0_5" json:"girls_0_5"`
	Boys6to10  int       `gorm:"column:boys_6_10" json:"boys_6_10"`
	Girls6to10 int       `gorm:"column:girls_6_10" json:"girls_6_10"`
	Boys11to17 int       `gorm:"column:boys_11_17" json:"boys_11_17"`
	Girls11to17 int      `gorm:"column:girls_11_17" json:"girls_11_17"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Members []HouseholdMember `gorm:"foreignKey:HouseholdID" json:"members,omitempty"`
}

func (Household) TableName() string {
	return "households"
}

// AdharNumber is nullable so the unique index only bites on real
// numbers: members registered without one must not collide.
type HouseholdMember struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	HouseholdID    uint           `gorm:"not null;index" json:"household_id"`
	FullName       string         `gorm:"size:255;not null;column:full_name" json:"full_name"`
	DOB            string         `gorm:"size:20;column:dob" json:"dob"`
	Age            int            `json:"age"`
	Gender         string         `gorm:"size:20" json:"gender"`
	AdharNumber    *string        `gorm:"size:20;uniqueIndex;column:adhar_number" json:"adhar_number,omitempty"`
	RelationToHead string         `gorm:"size:100;column:relation_to_head" json:"relation_to_head"`
	Education      string         `gorm:"size:100" json:"education"`
	Caste          string         `gorm:"size:100" json:"caste"`
	Diseases       pq.StringArray `gorm:"type:text[]" json:"diseases"`
	Pregnant       string         `gorm:"size:5;default:No" json:"pregnant"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (HouseholdMember) TableName() string {
	return "household_members"
}

// MemberANCRecord is the normalized ANC schema: one row per member,
// enforced by the unique index on member_id.
type MemberANCRecord struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MemberID          uint      `gorm:"not null;uniqueIndex;column:member_id" json:"member_id"`
	LMPDate           string    `gorm:"size:20;column:lmp_date" json:"lmp_date"`
	ChildrenNo        int       `gorm:"column:children_no" json:"children_no"`
	PregnancyMonth    int       `gorm:"column:pregnancy_month" json:"pregnancy_month"`
	ANCVisits         int       `gorm:"column:anc_visits" json:"anc_visits"`
	TetanusInjection  string    `gorm:"size:5;default:No;column:tetanus_injection" json:"tetanus_injection"`
	IronSupplements   string    `gorm:"size:5;default:No;column:iron_supplements" json:"iron_supplements"`
	SAMStatus         string    `gorm:"size:5;default:No;column:sam_status" json:"sam_status"`
	MAMStatus         string    `gorm:"size:5;default:No;column:mam_status" json:"mam_status"`
	ThalassemiaStatus string    `gorm:"size:5;default:No;column:thalassemia_status" json:"thalassemia_status"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (MemberANCRecord) TableName() string {
	return "member_anc_records"
}

type MemberInput struct {
	FullName       string             `json:"full_name"`
	DOB            string             `json:"dob"`
	Gender         string             `json:"gender"`
	AdharNumber    string             `json:"adhar_number"`
	RelationToHead string             `json:"relation_to_head"`
	Education      string             `json:"education"`
	Caste          string             `json:"caste"`
	Diseases       []string           `json:"diseases"`
	Pregnant       string             `json:"pregnant"`
	ANCDetails     *survey.ANCDetails `json:"anc_details,omitempty"`
}

type RegisterHouseholdRequest struct {
	Village     string        `json:"village" binding:"required"`
	HouseNo     string        `json:"house_no"`
	HeadName    string        `json:"head_name"`
	MobileNo    string        `json:"mobile_no" binding:"required"`
	Boys0to5    int           `json:"boys_0_5"`
	Girls0to5   int           `json:"girls_0_5"`
	Boys6to10   int           `json:"boys_6_10"`
	Girls6to10  int           `json:"girls_6_10"`
	Boys11to17  int           `json:"boys_11_17"`
	Girls11to17 int           `json:"girls_11_17"`
	MemberCount int           `json:"member_count"`
	Members     []MemberInput `json:"members"`
}

type RegisterHouseholdResponse struct {
	Household          Household `json:"household"`
	MembersCreated     int       `json:"members_created"`
	SideRecordsCreated int       `json:"side_records_created"`
	ANCRecordsCreated  int       `json:"anc_records_created"`
}

type ValidationError string

func (e ValidationError) Error() string { return string(e) }

type DuplicateAdharError struct {
	AdharNumber string
}

func (e *DuplicateAdharError) Error() string {
	return fmt.Sprintf("a member with adhar number %s is already registered", e.AdharNumber)
}
