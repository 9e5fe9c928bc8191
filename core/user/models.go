package user

import (
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/edupathpro/edupath/core"
)

// Roles
const (
	// Admin
	RoleAdmin      = "admin:"
	RoleAdminOwner = "admin:owner"

	// Counselor
	RoleCounselor = "counselor:"

	// Student
	RoleStudent = "student:"
)

var (
	AdminRoles     = []string{RoleAdmin, RoleAdminOwner}
	CounselorRoles = []string{RoleCounselor}
	StudentRoles   = []string{RoleStudent}
	AllRoles       = getAllRoles()

	rolePriorities = map[string]int{
		// Admins: 30 - 21
		RoleAdminOwner: 30,
		RoleAdmin:      21,

		// Counselors: 20 - 11
		RoleCounselor: 11,

		// Students: 10 - 1
		RoleStudent: 1,
	}

	Roles = []Role{
		{Name: "Student", Value: RoleStudent},
		{Name: "Counselor", Value: RoleCounselor},
		{Name: "Admin", Value: RoleAdmin},
		{Name: "Admin Owner", Value: RoleAdminOwner},
	}

	classLevels = []string{"8", "9", "10", "11", "12", "ug", "pg"}
	categories  = []string{"general", "obc", "sc", "st", "ews"}
	genders     = []string{"male", "female", "other"}
)

func getAllRoles() []string {
	all := make([]string, 0, 4)
	all = append(all, AdminRoles...)
	all = append(all, CounselorRoles...)
	all = append(all, StudentRoles...)
	return all
}

func RolePriority(role string) int {
	return rolePriorities[role]
}

func MaxRolePriority(roles []string) int {
	var max int
	for _, role := range roles {
		if RolePriority(role) > max {
			max = RolePriority(role)
		}
	}
	return max
}

type Role struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// User is an EduPath account: identity plus the optional profile fields the
// recommendation and scholarship screens read.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	Name         string    `json:"name" bson:"name"`
	Age          int       `json:"age,omitempty" bson:"age,omitempty"`
	Gender       string    `json:"gender,omitempty" bson:"gender,omitempty"`
	ClassLevel   string    `json:"class_level,omitempty" bson:"classLevel,omitempty"`
	Location     string    `json:"location,omitempty" bson:"location,omitempty"`
	Category     string    `json:"category,omitempty" bson:"category,omitempty"`
	Interests    []string  `json:"interests,omitempty" bson:"interests,omitempty"`
	CareerGoals  []string  `json:"career_goals,omitempty" bson:"careerGoals,omitempty"`
	Bio          string    `json:"bio,omitempty" bson:"bio,omitempty"`
	IsActive     *bool     `json:"is_active" bson:"isActive"`
	Roles        []string  `json:"roles" bson:"roles"`
	PasswordHash []byte    `json:"-" bson:"passwordHash"`
	CreatedAt    time.Time `json:"created_at" bson:"createdAt"` // UTC
	UpdatedAt    time.Time `json:"updated_at" bson:"updatedAt"` // UTC
	LastLogin    time.Time `json:"last_login" bson:"lastLogin"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

func (u *User) SetActive(active bool) { u.IsActive = &active }

func (u *User) Active() bool { return u.IsActive != nil && *u.IsActive }

func (u *User) RoleStartsWith(prefix string) bool {
	for _, role := range u.Roles {
		if strings.HasPrefix(role, prefix) {
			return true
		}
	}
	return false
}

func (u *User) IsAdmin() bool     { return u.RoleStartsWith(RoleAdmin) }
func (u *User) IsCounselor() bool { return u.RoleStartsWith(RoleCounselor) }
func (u *User) IsStudent() bool   { return u.RoleStartsWith(RoleStudent) }

// NewUser contains information needed to create a new User.
// The account is created at first sign-in with just identity fields; the
// profile is filled in later via UpdateProfile.
type NewUser struct {
	Name            string   `json:"name" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required,min=8"`
	PasswordConfirm string   `json:"password_confirm" validate:"required,eqfield=Password"`
	Roles           []string `json:"roles" validate:"omitempty,allroles"`
}

func (nu *NewUser) Validate(validate *validator.Validate, svc Service) error {
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true /* lower */)

	if err := validate.Struct(nu); err != nil {
		return err
	}
	return svc.CheckUniqueness(nu.Email)
}

// UpdateProfile defines what information may be provided to modify an
// existing User. IsActive and Roles may only be set by admins; the handler
// enforces that.
type UpdateProfile struct {
	Name            string   `json:"name"`
	Age             int      `json:"age" validate:"omitempty,gte=10,lte=100"`
	Gender          string   `json:"gender" validate:"omitempty,gender"`
	ClassLevel      string   `json:"class_level" validate:"omitempty,classlevel"`
	Location        string   `json:"location"`
	Category        string   `json:"category" validate:"omitempty,category"`
	Interests       []string `json:"interests"`
	CareerGoals     []string `json:"career_goals"`
	Bio             string   `json:"bio" validate:"omitempty,max=500"`
	IsActive        *bool    `json:"is_active"`
	Roles           []string `json:"roles" validate:"omitempty,allroles"`
	Password        string   `json:"password" validate:"omitempty,min=8"`
	PasswordConfirm string   `json:"password_confirm" validate:"required_with=Password,eqfield=Password"`
}

func (up *UpdateProfile) Validate(origUsr User, validate *validator.Validate) error {
	name := core.CleanString(up.Name)
	if name != "" {
		up.Name = name
	} else {
		up.Name = origUsr.Name
	}
	up.Gender = core.CleanString(up.Gender, true /* lower */)
	up.ClassLevel = core.CleanString(up.ClassLevel, true /* lower */)
	up.Category = core.CleanString(up.Category, true /* lower */)
	up.Location = core.CleanString(up.Location)

	return validate.Struct(up)
}

type ResetUserPassword struct {
	Token           string `json:"token,omitempty" validate:"required"`
	UID             string `json:"uid,omitempty" validate:"required"`
	Password        string `json:"password,omitempty" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm,omitempty" validate:"required,eqfield=Password"`
}

func (rp ResetUserPassword) Validate(validate *validator.Validate) error {
	return validate.Struct(rp)
}

type QueryFilter struct {
	Search      string    `query:"search"`
	Roles       []string  `query:"role"`
	IsActive    *bool     `query:"is_active"`
	CreatedFrom time.Time `query:"created_from"`
	CreatedTo   time.Time `query:"created_to"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Roles == nil && qf.IsActive == nil && qf.CreatedFrom.IsZero() && qf.CreatedTo.IsZero()
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

// InitValidators registers the user domain's custom validation tags.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation("allroles", allRolesValidation)
	core.RegisterCustomTranslation(validate, translator, "allroles", "unknown role")

	core.RegisterOneOfValidation(validate, translator, "gender", genders...)
	core.RegisterOneOfValidation(validate, translator, "classlevel", classLevels...)
	core.RegisterOneOfValidation(validate, translator, "category", categories...)
}

// allRolesValidation checks that all provided roles are known.
func allRolesValidation(fl validator.FieldLevel) bool {
	if roles, ok := fl.Field().Interface().([]string); ok {
		for _, role := range roles {
			if RolePriority(role) == 0 {
				return false
			}
		}
		return true
	}
	return false
}
