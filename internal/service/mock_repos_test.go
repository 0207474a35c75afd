package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/kgex/bigbbe/internal/model"
	"github.com/kgex/bigbbe/internal/repository"
)

// In-memory repositories for service tests. Each one keeps rows in a map
// keyed by id and hands out copies so tests cannot mutate stored state by
// accident.

// ────────────────────── users ──────────────────────

type mockUserRepo struct {
	users  map[uint]*model.User
	nextID uint
	err    error // when set, every call fails with it
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if m.err != nil {
		return m.err
	}
	user.ID = m.nextID
	m.nextID++
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) findBy(pred func(*model.User) bool) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if pred(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	return m.findBy(func(u *model.User) bool { return u.Email == email })
}

func (m *mockUserRepo) GetByPhone(_ context.Context, phone string) (*model.User, error) {
	return m.findBy(func(u *model.User) bool { return u.PhoneNo == phone })
}

func (m *mockUserRepo) GetByRegisterNum(_ context.Context, regNum string) (*model.User, error) {
	return m.findBy(func(u *model.User) bool { return u.RegisterNum == regNum })
}

func (m *mockUserRepo) GetByRFIDKey(_ context.Context, rfidKey string) (*model.User, error) {
	return m.findBy(func(u *model.User) bool { return u.RFIDKey != nil && *u.RFIDKey == rfidKey })
}

func (m *mockUserRepo) GetByDiscordUsername(_ context.Context, username string) (*model.User, error) {
	return m.findBy(func(u *model.User) bool {
		return u.DiscordUsername != nil && *u.DiscordUsername == username
	})
}

func (m *mockUserRepo) List(_ context.Context, offset, limit int) ([]model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	ids := make([]uint, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []model.User
	for i, id := range ids {
		if i < offset {
			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, *m.users[id])
	}
	return out, nil
}

func (m *mockUserRepo) ListByField(_ context.Context, field, value string) ([]model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.User
	for _, u := range m.users {
		var got string
		switch field {
		case "email":
			got = u.Email
		case "phone_no":
			got = u.PhoneNo
		case "register_num":
			got = u.RegisterNum
		case "dept":
			got = u.Dept
		case "college":
			got = u.College
		case "stay":
			got = u.Stay
		default:
			return nil, repository.ErrBadSearchField
		}
		if got == value {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uint) error {
	if m.err != nil {
		return m.err
	}
	delete(m.users, id)
	return nil
}

// ────────────────────── attendance ──────────────────────

type mockAttendanceRepo struct {
	entries map[uint]*model.AttendanceEntry
	users   *mockUserRepo // for Preload("User") emulation
	nextID  uint
	err     error
}

func newMockAttendanceRepo(users *mockUserRepo) *mockAttendanceRepo {
	return &mockAttendanceRepo{entries: make(map[uint]*model.AttendanceEntry), users: users, nextID: 1}
}

func (m *mockAttendanceRepo) attach(e model.AttendanceEntry) model.AttendanceEntry {
	if m.users != nil {
		if u, ok := m.users.users[e.UserID]; ok {
			cp := *u
			e.User = &cp
		}
	}
	return e
}

func (m *mockAttendanceRepo) Create(_ context.Context, entry *model.AttendanceEntry) error {
	if m.err != nil {
		return m.err
	}
	entry.ID = m.nextID
	m.nextID++
	cp := *entry
	m.entries[entry.ID] = &cp
	return nil
}

func (m *mockAttendanceRepo) GetByID(_ context.Context, id uint) (*model.AttendanceEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	e, ok := m.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *mockAttendanceRepo) GetOpenByUserID(_ context.Context, userID uint) (*model.AttendanceEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var latest *model.AttendanceEntry
	for _, e := range m.entries {
		if e.UserID == userID && e.OutTime == nil {
			if latest == nil || e.InTime.After(latest.InTime) {
				latest = e
			}
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *latest
	return &cp, nil
}

func (m *mockAttendanceRepo) Update(_ context.Context, entry *model.AttendanceEntry) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.entries[entry.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *entry
	m.entries[entry.ID] = &cp
	return nil
}

func (m *mockAttendanceRepo) ListAll(_ context.Context) ([]model.AttendanceEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.AttendanceEntry
	for _, e := range m.entries {
		out = append(out, m.attach(*e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InTime.After(out[j].InTime) })
	return out, nil
}

func (m *mockAttendanceRepo) ListByUserBetween(_ context.Context, userID uint, from, to time.Time) ([]model.AttendanceEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.AttendanceEntry
	for _, e := range m.entries {
		if e.UserID != userID {
			continue
		}
		if e.InTime.Before(from) || !e.InTime.Before(to) {
			continue
		}
		out = append(out, m.attach(*e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InTime.Before(out[j].InTime) })
	return out, nil
}

// ────────────────────── qr attendance ──────────────────────

type mockQRAttendanceRepo struct {
	atts   map[uint]*model.QRAttendance
	nextID uint
	err    error
}

func newMockQRAttendanceRepo() *mockQRAttendanceRepo {
	return &mockQRAttendanceRepo{atts: make(map[uint]*model.QRAttendance), nextID: 1}
}

func (m *mockQRAttendanceRepo) Create(_ context.Context, att *model.QRAttendance) error {
	if m.err != nil {
		return m.err
	}
	att.ID = m.nextID
	m.nextID++
	cp := *att
	m.atts[att.ID] = &cp
	return nil
}

func (m *mockQRAttendanceRepo) GetLatestOpenByUserID(_ context.Context, userID uint) (*model.QRAttendance, error) {
	if m.err != nil {
		return nil, m.err
	}
	var latest *model.QRAttendance
	for _, a := range m.atts {
		if a.UserID == userID && a.OutTime == nil {
			if latest == nil || a.InTime.After(latest.InTime) {
				latest = a
			}
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *latest
	return &cp, nil
}

func (m *mockQRAttendanceRepo) Update(_ context.Context, att *model.QRAttendance) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.atts[att.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *att
	m.atts[att.ID] = &cp
	return nil
}

func (m *mockQRAttendanceRepo) ListAll(_ context.Context) ([]model.QRAttendance, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.QRAttendance
	for _, a := range m.atts {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InTime.After(out[j].InTime) })
	return out, nil
}

func (m *mockQRAttendanceRepo) ListByUserID(_ context.Context, userID uint) ([]model.QRAttendance, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.QRAttendance
	for _, a := range m.atts {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InTime.After(out[j].InTime) })
	return out, nil
}

func (m *mockQRAttendanceRepo) DeleteAll(_ context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.atts = make(map[uint]*model.QRAttendance)
	return nil
}

// ────────────────────── reports ──────────────────────

type mockReportRepo struct {
	reports map[uint]*model.Report
	nextID  uint
	err     error
}

func newMockReportRepo() *mockReportRepo {
	return &mockReportRepo{reports: make(map[uint]*model.Report), nextID: 1}
}

func (m *mockReportRepo) Create(_ context.Context, report *model.Report) error {
	if m.err != nil {
		return m.err
	}
	report.ID = m.nextID
	m.nextID++
	cp := *report
	m.reports[report.ID] = &cp
	return nil
}

func (m *mockReportRepo) GetByID(_ context.Context, id uint) (*model.Report, error) {
	if m.err != nil {
		return nil, m.err
	}
	r, ok := m.reports[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *mockReportRepo) Update(_ context.Context, report *model.Report) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.reports[report.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *report
	m.reports[report.ID] = &cp
	return nil
}

func (m *mockReportRepo) ListByOwner(_ context.Context, ownerID uint) ([]model.Report, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Report
	for _, r := range m.reports {
		if r.OwnerID == ownerID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.After(out[j].StartTime) })
	return out, nil
}

func (m *mockReportRepo) ListByOwnerBetween(_ context.Context, ownerID uint, from, to time.Time) ([]model.Report, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Report
	for _, r := range m.reports {
		if r.OwnerID != ownerID {
			continue
		}
		if r.StartTime.Before(from) || !r.StartTime.Before(to) {
			continue
		}
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (m *mockReportRepo) ListAll(_ context.Context) ([]model.Report, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Report
	for _, r := range m.reports {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.After(out[j].StartTime) })
	return out, nil
}

// ────────────────────── clients & projects ──────────────────────

type mockClientRepo struct {
	clients map[uint]*model.Client
	nextID  uint
	err     error
}

func newMockClientRepo() *mockClientRepo {
	return &mockClientRepo{clients: make(map[uint]*model.Client), nextID: 1}
}

func (m *mockClientRepo) Create(_ context.Context, client *model.Client) error {
	if m.err != nil {
		return m.err
	}
	client.ID = m.nextID
	m.nextID++
	cp := *client
	m.clients[client.ID] = &cp
	return nil
}

func (m *mockClientRepo) GetByID(_ context.Context, id uint) (*model.Client, error) {
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockClientRepo) List(_ context.Context) ([]model.Client, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Client
	for _, c := range m.clients {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockClientRepo) Delete(_ context.Context, id uint) error {
	if m.err != nil {
		return m.err
	}
	delete(m.clients, id)
	return nil
}

type mockProjectRepo struct {
	projects map[uint]*model.Project
	nextID   uint
	err      error
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{projects: make(map[uint]*model.Project), nextID: 1}
}

func (m *mockProjectRepo) Create(_ context.Context, project *model.Project) error {
	if m.err != nil {
		return m.err
	}
	project.ID = m.nextID
	m.nextID++
	cp := *project
	m.projects[project.ID] = &cp
	return nil
}

func (m *mockProjectRepo) GetByID(_ context.Context, id uint) (*model.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockProjectRepo) ListByClient(_ context.Context, clientID uint) ([]model.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Project
	for _, p := range m.projects {
		if p.OwnerID == clientID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockProjectRepo) ListAll(_ context.Context) ([]model.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Project
	for _, p := range m.projects {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockProjectRepo) Delete(_ context.Context, id uint) error {
	if m.err != nil {
		return m.err
	}
	delete(m.projects, id)
	return nil
}

// ────────────────────── inventory ──────────────────────

type mockInventoryRepo struct {
	items  map[uint]*model.Inventory
	nextID uint
	err    error
}

func newMockInventoryRepo() *mockInventoryRepo {
	return &mockInventoryRepo{items: make(map[uint]*model.Inventory), nextID: 1}
}

func (m *mockInventoryRepo) Create(_ context.Context, inv *model.Inventory) error {
	if m.err != nil {
		return m.err
	}
	inv.ID = m.nextID
	m.nextID++
	cp := *inv
	m.items[inv.ID] = &cp
	return nil
}

func (m *mockInventoryRepo) GetByID(_ context.Context, id uint) (*model.Inventory, error) {
	if m.err != nil {
		return nil, m.err
	}
	i, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *i
	return &cp, nil
}

func (m *mockInventoryRepo) List(_ context.Context, offset, limit int) ([]model.Inventory, error) {
	if m.err != nil {
		return nil, m.err
	}
	ids := make([]uint, 0, len(m.items))
	for id := range m.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []model.Inventory
	for i, id := range ids {
		if i < offset {
			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, *m.items[id])
	}
	return out, nil
}

func (m *mockInventoryRepo) Update(_ context.Context, inv *model.Inventory) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.items[inv.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *inv
	m.items[inv.ID] = &cp
	return nil
}

func (m *mockInventoryRepo) Delete(_ context.Context, id uint) error {
	if m.err != nil {
		return m.err
	}
	delete(m.items, id)
	return nil
}

// ────────────────────── grievances & items ──────────────────────

type mockGrievanceRepo struct {
	gs     map[uint]*model.Grievance
	nextID uint
	err    error
}

func newMockGrievanceRepo() *mockGrievanceRepo {
	return &mockGrievanceRepo{gs: make(map[uint]*model.Grievance), nextID: 1}
}

func (m *mockGrievanceRepo) Create(_ context.Context, g *model.Grievance) error {
	if m.err != nil {
		return m.err
	}
	g.ID = m.nextID
	m.nextID++
	cp := *g
	m.gs[g.ID] = &cp
	return nil
}

func (m *mockGrievanceRepo) ListByOwner(_ context.Context, ownerID uint) ([]model.Grievance, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Grievance
	for _, g := range m.gs {
		if g.OwnerID == ownerID {
			out = append(out, *g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type mockItemRepo struct {
	items  map[uint]*model.Item
	nextID uint
	err    error
}

func newMockItemRepo() *mockItemRepo {
	return &mockItemRepo{items: make(map[uint]*model.Item), nextID: 1}
}

func (m *mockItemRepo) Create(_ context.Context, item *model.Item) error {
	if m.err != nil {
		return m.err
	}
	item.ID = m.nextID
	m.nextID++
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *mockItemRepo) List(_ context.Context, offset, limit int) ([]model.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	ids := make([]uint, 0, len(m.items))
	for id := range m.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []model.Item
	for i, id := range ids {
		if i < offset {
			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, *m.items[id])
	}
	return out, nil
}

// ────────────────────── mail ──────────────────────

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// mockMailer records sends; set fail to exercise delivery failures.
type mockMailer struct {
	sent []sentMail
	fail error
}

func (m *mockMailer) Send(to, subject, htmlBody string) error {
	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

// ────────────────────── fixture ──────────────────────

type repoFixture struct {
	repo       *repository.Repository
	users      *mockUserRepo
	attendance *mockAttendanceRepo
	qr         *mockQRAttendanceRepo
	reports    *mockReportRepo
	clients    *mockClientRepo
	projects   *mockProjectRepo
	inventory  *mockInventoryRepo
	grievances *mockGrievanceRepo
	items      *mockItemRepo
}

func newRepoFixture() *repoFixture {
	users := newMockUserRepo()
	f := &repoFixture{
		users:      users,
		attendance: newMockAttendanceRepo(users),
		qr:         newMockQRAttendanceRepo(),
		reports:    newMockReportRepo(),
		clients:    newMockClientRepo(),
		projects:   newMockProjectRepo(),
		inventory:  newMockInventoryRepo(),
		grievances: newMockGrievanceRepo(),
		items:      newMockItemRepo(),
	}
	f.repo = &repository.Repository{
		User:         f.users,
		Attendance:   f.attendance,
		QRAttendance: f.qr,
		Report:       f.reports,
		Client:       f.clients,
		Project:      f.projects,
		Inventory:    f.inventory,
		Grievance:    f.grievances,
		Item:         f.items,
	}
	return f
}

var errBoom = errors.New("boom")
