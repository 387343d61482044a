package user

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/ecoquest/core"
)

// Roles
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

var Roles = []Role{
	{Name: "Student", Value: RoleStudent},
	{Name: "Teacher", Value: RoleTeacher},
}

// Onboarding steps, in the order a new student goes through them.
const (
	StepAvatarSelection  = "avatar-selection"
	StepAgeSelection     = "age-selection"
	StepStudentDashboard = "student-dashboard"
	StepTeacherDashboard = "teacher-dashboard"
)

type Role struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Avatar       string    `json:"avatar,omitempty"`
	AgeGroup     string    `json:"age_group,omitempty"`
	Level        int       `json:"level,omitempty"`
	XP           int       `json:"xp,omitempty"`
	TeacherCode  string    `json:"teacher_code,omitempty"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"` // UTC
	LastLogin    time.Time `json:"last_login"` // UTC
}

func (u *User) setPassword(pwd string, cost int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), cost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

func (u *User) IsStudent() bool { return u.Role == RoleStudent }
func (u *User) IsTeacher() bool { return u.Role == RoleTeacher }

// NextStep is where the user lands after signing in: students pick an avatar, then an age group.
func (u *User) NextStep() string {
	switch {
	case u.IsStudent() && u.Avatar == "":
		return StepAvatarSelection
	case u.IsStudent() && u.AgeGroup == "":
		return StepAgeSelection
	case u.IsStudent():
		return StepStudentDashboard
	default:
		return StepTeacherDashboard
	}
}

// Login contains the sign in / sign up form. An unknown email signs up.
type Login struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Role        string `json:"role" validate:"required,oneof=student teacher"`
	Name        string `json:"name"`
	TeacherCode string `json:"teacher_code"`
}

func (l *Login) Validate(validate *validator.Validate) error {
	l.Email = core.CleanString(l.Email, true /* lower */)
	l.Role = core.CleanString(l.Role, true /* lower */)
	l.Name = core.CleanString(l.Name)
	l.TeacherCode = core.CleanString(l.TeacherCode)
	return validate.Struct(l)
}

// defaultName is the local part of the email.
func (l *Login) defaultName() string {
	if l.Name != "" {
		return l.Name
	}
	return strings.SplitN(l.Email, "@", 2)[0]
}

type SetAvatar struct {
	Avatar string `json:"avatar" validate:"required,avatar"`
}

func (sa *SetAvatar) Validate(validate *validator.Validate) error {
	sa.Avatar = core.CleanString(sa.Avatar, true /* lower */)
	return validate.Struct(sa)
}

type SetAgeGroup struct {
	AgeGroup string `json:"age_group" validate:"required,agegroup"`
}

func (sg *SetAgeGroup) Validate(validate *validator.Validate) error {
	sg.AgeGroup = core.CleanString(sg.AgeGroup, true /* lower */)
	return validate.Struct(sg)
}
