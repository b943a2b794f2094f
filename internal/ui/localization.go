package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeyFile           = "file"
	KeySettings       = "settings"
	KeyLanguage       = "language"
	KeyRevealDataFile = "reveal_data_file"
	KeySignOut        = "sign_out"

	KeyUsername = "username"
	KeyPassword = "password"
	KeySignIn   = "sign_in"

	KeyNewTask          = "new_task"
	KeyTitle            = "title"
	KeyDescription      = "description"
	KeyService          = "service"
	KeyPriority         = "priority"
	KeyDueDate          = "due_date"
	KeyAssignedTo       = "assigned_to"
	KeyCreate           = "create"
	KeyCancel           = "cancel"
	KeySave             = "save"
	KeyBrowse           = "browse"
	KeyPleaseEnterTitle = "please_enter_title"

	KeyDataFile      = "data_file"
	KeyFrameRate     = "frame_rate"
	KeyUserName      = "user_name"
	KeyStartLoggedIn = "start_logged_in"
	KeySettingsSaved = "settings_saved"
	KeyTaskCreated   = "task_created"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:       "Task Tracker",
		KeyFile:           "File",
		KeySettings:       "Settings",
		KeyLanguage:       "Language",
		KeyRevealDataFile: "Reveal Data File",
		KeySignOut:        "Sign Out",

		KeyUsername: "Username",
		KeyPassword: "Password",
		KeySignIn:   "Sign In",

		KeyNewTask:          "New Task",
		KeyTitle:            "Title",
		KeyDescription:      "Description",
		KeyService:          "Service",
		KeyPriority:         "Priority",
		KeyDueDate:          "Due Date",
		KeyAssignedTo:       "Assigned To",
		KeyCreate:           "Create",
		KeyCancel:           "Cancel",
		KeySave:             "Save",
		KeyBrowse:           "Browse",
		KeyPleaseEnterTitle: "Please enter a title",

		KeyDataFile:      "Data File",
		KeyFrameRate:     "Frame Rate",
		KeyUserName:      "User Name",
		KeyStartLoggedIn: "Start Logged In",
		KeySettingsSaved: "Settings saved successfully!",
		KeyTaskCreated:   "Task created",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:       "Трекер задач",
		KeyFile:           "Файл",
		KeySettings:       "Настройки",
		KeyLanguage:       "Язык",
		KeyRevealDataFile: "Показать файл данных",
		KeySignOut:        "Выйти",

		KeyUsername: "Имя пользователя",
		KeyPassword: "Пароль",
		KeySignIn:   "Войти",

		KeyNewTask:          "Новая задача",
		KeyTitle:            "Название",
		KeyDescription:      "Описание",
		KeyService:          "Сервис",
		KeyPriority:         "Приоритет",
		KeyDueDate:          "Срок",
		KeyAssignedTo:       "Исполнитель",
		KeyCreate:           "Создать",
		KeyCancel:           "Отмена",
		KeySave:             "Сохранить",
		KeyBrowse:           "Обзор",
		KeyPleaseEnterTitle: "Пожалуйста, введите название",

		KeyDataFile:      "Файл данных",
		KeyFrameRate:     "Частота кадров",
		KeyUserName:      "Имя пользователя",
		KeyStartLoggedIn: "Входить автоматически",
		KeySettingsSaved: "Настройки успешно сохранены!",
		KeyTaskCreated:   "Задача создана",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:       "Rastreador de Tarefas",
		KeyFile:           "Arquivo",
		KeySettings:       "Configurações",
		KeyLanguage:       "Idioma",
		KeyRevealDataFile: "Revelar Arquivo de Dados",
		KeySignOut:        "Sair",

		KeyUsername: "Nome de usuário",
		KeyPassword: "Senha",
		KeySignIn:   "Entrar",

		KeyNewTask:          "Nova Tarefa",
		KeyTitle:            "Título",
		KeyDescription:      "Descrição",
		KeyService:          "Serviço",
		KeyPriority:         "Prioridade",
		KeyDueDate:          "Prazo",
		KeyAssignedTo:       "Responsável",
		KeyCreate:           "Criar",
		KeyCancel:           "Cancelar",
		KeySave:             "Salvar",
		KeyBrowse:           "Navegar",
		KeyPleaseEnterTitle: "Por favor, digite um título",

		KeyDataFile:      "Arquivo de Dados",
		KeyFrameRate:     "Taxa de Quadros",
		KeyUserName:      "Nome de Usuário",
		KeyStartLoggedIn: "Iniciar Conectado",
		KeySettingsSaved: "Configurações salvas com sucesso!",
		KeyTaskCreated:   "Tarefa criada",
	}
}
