// Package student is the teacher's class roster.
package student

import (
	"fmt"
	"io"
	"net/mail"
	"strings"
	"time"

	"github.com/trezcool/ecoquest/core"
	"github.com/trezcool/ecoquest/core/records"
)

const activeWindow = 7 * 24 * time.Hour

type Service struct {
	students *records.Collection[Student]
	mailSvc  core.EmailService
	deps     records.Deps
}

// NewService builds the roster; mailSvc may be nil, in which case no invitation is sent.
func NewService(deps records.Deps, mailSvc core.EmailService, seed ...Student) *Service {
	return &Service{
		students: records.NewCollection(func(s Student) int { return s.ID }, seed...),
		mailSvc:  mailSvc,
		deps:     deps.WithDefaults(),
	}
}

// Add puts a new level-1 student at the front of the roster and emails them an invitation.
func (svc *Service) Add(ns NewStudent, inviter Inviter) (Student, error) {
	if err := ns.Validate(svc.deps.Validate); err != nil {
		return Student{}, err
	}
	if ns.Avatar == "" {
		ns.Avatar = svc.randomAvatar()
	}
	today := svc.deps.Today()

	s := svc.students.Insert(records.Front, func(id int) Student {
		return newStudent(id, ns.Name, ns.Email, ns.Avatar, today)
	})
	svc.invite(inviter, s)
	return s, nil
}

// Import appends one student per row, defaulting missing names and emails to
// `Student {n}` and `student{n}@school.edu` (n is the 1-based row index). No row is rejected.
func (svc *Service) Import(rows []Row) []Student {
	if len(rows) == 0 {
		return nil
	}
	today := svc.deps.Today()
	return svc.students.InsertMany(records.Back, len(rows), func(i, id int) Student {
		row := rows[i]
		name, email := row.Name, row.Email
		if name == "" {
			name = fmt.Sprintf("Student %d", i+1)
		}
		if email == "" {
			email = fmt.Sprintf("student%d@school.edu", i+1)
		}
		return newStudent(id, name, email, svc.randomAvatar(), today)
	})
}

// ImportCSV parses r with ParseCSV and imports the rows.
func (svc *Service) ImportCSV(r io.Reader) ([]Student, error) {
	rows, err := ParseCSV(r)
	if err != nil {
		return nil, err
	}
	return svc.Import(rows), nil
}

// Search returns the students whose name or email contains term, case-insensitively.
// An empty term matches everyone.
func (svc *Service) Search(term string) []Student {
	term = core.CleanString(term, true)
	if term == "" {
		return svc.students.All()
	}
	return svc.students.Filter(func(s Student) bool {
		return strings.Contains(strings.ToLower(s.Name), term) || strings.Contains(strings.ToLower(s.Email), term)
	})
}

func (svc *Service) List() []Student {
	return svc.students.All()
}

func (svc *Service) Stats() Stats {
	students := svc.students.All()
	since := svc.deps.Now().Add(-activeWindow)
	return Stats{
		Total:          len(students),
		AvgLevel:       records.RoundedAverage(students, func(s Student) int { return s.Level }),
		GoalsCompleted: records.Sum(students, func(s Student) int { return s.GoalsCompleted }),
		ActiveThisWeek: records.Count(students, func(s Student) bool {
			last, err := time.Parse(core.DateLayout, s.LastActive)
			return err == nil && !last.Before(since)
		}),
	}
}

func (svc *Service) randomAvatar() string {
	return core.Elements[svc.deps.IntN(len(core.Elements))].ID
}

func (svc *Service) invite(inviter Inviter, s Student) {
	if svc.mailSvc == nil {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Name: s.Name, Address: s.Email}},
		Subject:      "You have been invited to EcoQuest",
		TemplateName: invitationTemplate,
		TemplateData: invitation{
			Name:        s.Name,
			Email:       s.Email,
			TeacherName: inviter.Name,
			ClassCode:   inviter.ClassCode,
		},
	})
}

func newStudent(id int, name, email, avatar, today string) Student {
	return Student{
		ID:         id,
		Name:       name,
		Email:      email,
		Avatar:     avatar,
		Level:      1,
		XP:         0,
		JoinedAt:   today,
		LastActive: today,
	}
}
