package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkhayatov/go-user-manager/internal/service"
	"github.com/mkhayatov/go-user-manager/internal/validators"
	"github.com/mkhayatov/go-user-manager/models"
)

// form input indexes, in focus order
const (
	inputName = iota
	inputEmail
	inputPassword
	inputBirthday
	inputAvatar

	inputCount
)

// avatarOptions lists the built-in avatars offered by the picker.
var avatarOptions = []string{
	"/avatars/1.png",
	"/avatars/2.png",
	"/avatars/3.png",
	"/avatars/4.png",
	"/avatars/5.png",
	"/avatars/6.png",
}

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices

	users   []models.User
	idx     int
	loading bool
	status  string
	errMsg  string

	formOpen   bool
	editing    bool
	formInputs []textinput.Model
	formFocus  int
	fieldErrs  validators.FieldErrors
	saving     bool

	pickerOpen bool
	pickerIdx  int
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		loading:  true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		m.users = msg.users
		m.clampIdx()
		return m, nil
	case userSavedMsg:
		m.saving = false
		m.users = msg.users
		m.resetForm()
		m.status = "Запись сохранена"
		m.clampIdx()
		return m, nil
	case userDeletedMsg:
		m.users = msg.users
		m.status = "Запись удалена"
		m.clampIdx()
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.formOpen && !m.pickerOpen {
			return m.updateForm(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.pickerOpen {
		return m.updatePicker(keyMsg)
	}

	if m.formOpen {
		return m.updateForm(msg)
	}

	return m.updateList(keyMsg)
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.users)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.add):
		m.openForm(models.UserDraft{}, false)
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		user, ok := m.current()
		if !ok {
			m.status = "Нет записей"
			return m, nil
		}
		draft, ok := m.services.UserService.BeginEdit(user.ID)
		if !ok {
			m.status = "Запись не найдена"
			return m, nil
		}
		m.openForm(draft, true)
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		user, ok := m.current()
		if !ok {
			m.status = "Нет записей"
			return m, nil
		}
		return m, m.cmdDelete(user.ID)
	case key.Matches(keyMsg, keys.copy):
		user, ok := m.current()
		if !ok {
			m.status = "Нет записей"
			return m, nil
		}
		if err := clipboard.WriteAll(user.Email); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Email скопирован"
	case key.Matches(keyMsg, keys.reload):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.status = ""
		m.errMsg = ""
		return m, m.cmdLoad()
	}

	return m, nil
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.editing {
				m.services.UserService.CancelEdit()
			}
			m.resetForm()
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formInputs[m.formFocus].Blur()
			m.formFocus = (m.formFocus + 1) % len(m.formInputs)
			m.formInputs[m.formFocus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formInputs[m.formFocus].Blur()
			m.formFocus = (m.formFocus - 1 + len(m.formInputs)) % len(m.formInputs)
			m.formInputs[m.formFocus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.avatars):
			m.pickerOpen = true
			m.pickerIdx = 0
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.submitForm()
		}
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) submitForm() (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}

	draft := models.UserDraft{
		Name:      m.formInputs[inputName].Value(),
		Email:     m.formInputs[inputEmail].Value(),
		Password:  m.formInputs[inputPassword].Value(),
		Birthday:  m.formInputs[inputBirthday].Value(),
		AvatarURL: m.formInputs[inputAvatar].Value(),
	}

	if err := m.services.DraftValidator.Validate(m.ctx, draft); err != nil {
		if fieldErrs, ok := validators.AsFieldErrors(err); ok {
			m.fieldErrs = fieldErrs
			return m, nil
		}
		m.errMsg = err.Error()
		return m, nil
	}

	draft = m.services.DraftValidator.Normalize(draft)
	m.fieldErrs = nil
	m.errMsg = ""
	m.saving = true

	if m.editing {
		return m, m.cmdUpdate(draft)
	}
	return m, m.cmdCreate(draft)
}

func (m mainLoopModel) updatePicker(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.pickerOpen = false
	case key.Matches(keyMsg, keys.up):
		if m.pickerIdx > 0 {
			m.pickerIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.pickerIdx < len(avatarOptions)-1 {
			m.pickerIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.formInputs[inputAvatar].SetValue(avatarOptions[m.pickerIdx])
		m.pickerOpen = false
	}

	return m, nil
}

func (m *mainLoopModel) openForm(draft models.UserDraft, editing bool) {
	name := textinput.New()
	name.Placeholder = "Имя"
	name.Width = 40
	name.SetValue(draft.Name)
	name.Focus()

	email := textinput.New()
	email.Placeholder = "user@example.com"
	email.Width = 40
	email.SetValue(draft.Email)

	// пароль по условию задачи хранится и отображается открытым текстом
	password := textinput.New()
	password.Placeholder = "Пароль"
	password.Width = 40
	password.SetValue(draft.Password)

	birthday := textinput.New()
	birthday.Placeholder = "ГГГГ-ММ-ДД"
	birthday.Width = 40
	birthday.SetValue(draft.Birthday)

	avatar := textinput.New()
	avatar.Placeholder = "URL аватара (можно пусто)"
	avatar.Width = 40
	avatar.SetValue(draft.AvatarURL)

	m.formInputs = []textinput.Model{name, email, password, birthday, avatar}
	m.formFocus = 0
	m.formOpen = true
	m.editing = editing
	m.fieldErrs = nil
	m.saving = false
	m.status = ""
	m.errMsg = ""
}

func (m *mainLoopModel) resetForm() {
	m.formOpen = false
	m.editing = false
	m.formInputs = nil
	m.formFocus = 0
	m.fieldErrs = nil
	m.saving = false
	m.pickerOpen = false
	m.pickerIdx = 0
}

func (m *mainLoopModel) clampIdx() {
	if m.idx >= len(m.users) {
		m.idx = len(m.users) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) current() (models.User, bool) {
	if len(m.users) == 0 || m.idx < 0 || m.idx >= len(m.users) {
		return models.User{}, false
	}
	return m.users[m.idx], true
}

func (m mainLoopModel) View() string {
	if m.pickerOpen {
		return m.viewPicker()
	}
	if m.formOpen {
		return m.viewForm()
	}
	return m.viewList()
}

func (m mainLoopModel) viewList() string {
	out := ""

	if m.loading {
		out += "Загрузка списка...\n"
		return renderPage("ПОЛЬЗОВАТЕЛИ", strings.TrimRight(out, "\n"), listHotKeys)
	}

	if m.errMsg != "" {
		out += errorStyle.Render("Ошибка: "+m.errMsg) + "\n"
	}
	if m.status != "" {
		out += "Статус: " + m.status + "\n"
	}

	if len(m.users) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "Записей нет\n"
	} else {
		if out != "" {
			out += "\n"
		}
		out += "ID   │ Имя                  │ Email                     │ Пароль     │ Дата рожд. │ Аватар\n"
		out += "─────┼──────────────────────┼───────────────────────────┼────────────┼────────────┼────────────────\n"
		for i, user := range m.users {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			out += fmt.Sprintf(
				"%s %-3d│ %-20s │ %-25s │ %-10s │ %-10s │ %s\n",
				cursor,
				user.ID,
				fitText(user.Name, 20),
				fitText(user.Email, 25),
				fitText(user.Password, 10),
				fitText(user.Birthday, 10),
				valueOrDash(fitText(user.AvatarURL, 16)),
			)
		}
	}

	return renderPage("ПОЛЬЗОВАТЕЛИ", strings.TrimRight(out, "\n"), listHotKeys)
}

const listHotKeys = "a: добавить │ e: изм. │ ctrl+d: уд. │ c: коп. email │ r: обновить │ ↑/↓: нав. │ q: выход"

func (m mainLoopModel) viewForm() string {
	title := "НОВЫЙ ПОЛЬЗОВАТЕЛЬ"
	if m.editing {
		title = "ИЗМЕНЕНИЕ ПОЛЬЗОВАТЕЛЯ"
	}

	labels := [inputCount]string{"Имя", "Email", "Пароль", "Дата рожд.", "Аватар"}
	fields := [inputCount]string{
		validators.FieldName,
		validators.FieldEmail,
		validators.FieldPassword,
		validators.FieldBirthday,
		"", // аватар не валидируется
	}

	out := ""
	for i := range m.formInputs {
		out += fmt.Sprintf("%-10s: [ %s ]\n", labels[i], m.formInputs[i].View())
		if fields[i] != "" {
			if fieldErr, ok := m.fieldErrs[fields[i]]; ok {
				out += "            " + errorStyle.Render("^ "+fieldErr) + "\n"
			}
		}
	}

	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Ошибка: "+m.errMsg) + "\n"
	}
	if m.saving {
		out += "\nСохранение...\n"
	}

	return renderPage(
		title,
		strings.TrimRight(out, "\n"),
		"tab: след. поле │ shift+tab: пред. поле │ ctrl+a: аватар │ enter: сохранить │ esc: отмена",
	)
}

func (m mainLoopModel) viewPicker() string {
	out := "Выберите аватар:\n\n"
	for i, option := range avatarOptions {
		cursor := " "
		if i == m.pickerIdx {
			cursor = ">"
		}
		out += fmt.Sprintf("%s %d. %s\n", cursor, i+1, option)
	}

	box := overlayBoxStyle.Render(strings.TrimRight(out, "\n"))
	return renderPage("АВАТАР", box, "enter: выбрать │ ↑/↓: навигация │ esc: закрыть")
}

func (m mainLoopModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	svc := m.services.UserService

	return func() tea.Msg {
		return listLoadedMsg{users: svc.Load(ctx)}
	}
}

func (m mainLoopModel) cmdCreate(draft models.UserDraft) tea.Cmd {
	ctx := m.ctx
	svc := m.services.UserService

	return func() tea.Msg {
		return userSavedMsg{users: svc.Create(ctx, draft)}
	}
}

func (m mainLoopModel) cmdUpdate(draft models.UserDraft) tea.Cmd {
	ctx := m.ctx
	svc := m.services.UserService

	return func() tea.Msg {
		return userSavedMsg{users: svc.Update(ctx, draft)}
	}
}

func (m mainLoopModel) cmdDelete(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.UserService

	return func() tea.Msg {
		return userDeletedMsg{users: svc.Delete(ctx, id)}
	}
}
