// Package i18n is the message catalog for user-facing text.
//
// Lookup is a pure function of (locale, key); there is no global current
// locale. Callers thread the Locale through explicitly.
package i18n

import (
	"fmt"
	"strings"
)

// Locale selects a message table.
type Locale string

const (
	English Locale = "en"
	Chinese Locale = "zh"
)

// Option is a selectable locale with its native display name.
type Option struct {
	Locale Locale
	Name   string
}

// Locales returns the supported locales in menu order.
func Locales() []Option {
	return []Option{
		{English, "English"},
		{Chinese, "中文"},
	}
}

// ParseLocale maps a tag such as "en", "zh", "zh_CN.UTF-8" or "en-US" to a
// supported Locale.
func ParseLocale(tag string) (Locale, error) {
	t := strings.ToLower(strings.TrimSpace(tag))
	switch {
	case t == "" || strings.HasPrefix(t, "en") || t == "c" || t == "posix":
		return English, nil
	case strings.HasPrefix(t, "zh"):
		return Chinese, nil
	}
	return English, fmt.Errorf("unsupported locale %q", tag)
}

// Key identifies a message.
type Key int

const (
	Title Key = iota
	LanguagePrompt
	ModePrompt
	ModeNewFolder
	ModeCurrentDir
	ProjectNamePrompt
	NameEmpty
	NameTooLong
	NameInvalid
	TargetDir
	DirExistsPrompt
	Cancelled
	CreateDir
	AddDir
	PrefixChoicePrompt
	NoPrefix
	WithPrefix
	PrefixPrompt
	CreatedFile
	UpdatedFile
	SkipExisting
	GitInitPrompt
	Yes
	No
	GitInitialized
	GitNotFound
	GitInitFailed
	GitIdentityMissing
	CommitPrompt
	GitAddFailed
	GitCommitFailed
	CommitSuccess
	LicensePrompt
	SkipLicense
	Proprietary
	LicenseWritten
	IncrementalDone
	InitDone
	GuidePath
	ReadmePath
	EnvPath
	PrefixAdded
	DotenvTip
	InitFailed
)

var en = map[Key]string{
	Title:              "🛠️  yuuskel — Initialize standardized project structure",
	LanguagePrompt:     "🌐 Select your language",
	ModePrompt:         "❓ Initialization mode",
	ModeNewFolder:      "Create new project folder",
	ModeCurrentDir:     "Initialize in current directory",
	ProjectNamePrompt:  "📁 Project folder name",
	NameEmpty:          "Project name cannot be empty",
	NameTooLong:        "Project name too long (max 100 characters)",
	NameInvalid:        "Project name contains invalid characters",
	TargetDir:          "✅ Target directory: %s",
	DirExistsPrompt:    "⚠️  Target folder already exists. Continue?",
	Cancelled:          "❌ Operation cancelled",
	CreateDir:          "➕ Creating directory: %s",
	AddDir:             "➕ Adding missing directory: %s",
	PrefixChoicePrompt: "🔤 Add prefix to env vars? (Avoid conflicts across projects)",
	NoPrefix:           "No (use generic names like OUTPUT_DIR)",
	WithPrefix:         "Yes (e.g., MYPROJ_OUTPUT_DIR)",
	PrefixPrompt:       "🔤 Project prefix (uppercase recommended, e.g., MYTOOL)",
	CreatedFile:        "➕ %s",
	UpdatedFile:        "🔄 Updating: %s",
	SkipExisting:       "ℹ️  %s already exists, skipping update",
	GitInitPrompt:      "❓ Initialize Git repository?",
	Yes:                "Yes",
	No:                 "No",
	GitInitialized:     "📦 Git repository initialized",
	GitNotFound:        "⚠️  Failed to run git (is Git installed?): %s",
	GitInitFailed:      "⚠️  Git init failed: %s",
	GitIdentityMissing: "⚠️  Git user info not configured, skipping initial commit\n💡 Run these commands:\n  git config --global user.name \"Your Name\"\n  git config --global user.email \"you@example.com\"",
	CommitPrompt:       "💾 Create initial commit?",
	GitAddFailed:       "⚠️  Git add failed: %s\n💡 Check: 1. File permissions 2. Git config (user.name/user.email)",
	GitCommitFailed:    "⚠️  Git commit failed: %s",
	CommitSuccess:      "💾 Initial commit created successfully",
	LicensePrompt:      "📜 Choose an open-source license (optional)",
	SkipLicense:        "Skip (do not generate LICENSE)",
	Proprietary:        "Proprietary",
	LicenseWritten:     "📜 LICENSE (%s)",
	IncrementalDone:    "✅ Project structure incrementally updated!",
	InitDone:           "✅ Standardized project initialized!",
	GuidePath:          "📄 Usage guide: %s/%s",
	ReadmePath:         "📄 Project entry: %s/%s",
	EnvPath:            "⚙️  Env file path: %s/%s",
	PrefixAdded:        "🔑 Env vars prefixed with: %s",
	DotenvTip:          "💡 Tip: Load paths via dotenv in scripts to avoid hardcoding!",
	InitFailed:         "❌ Initialization failed: %s",
}

var zh = map[Key]string{
	Title:              "🛠️  yuuskel — 初始化通用项目结构",
	LanguagePrompt:     "🌐 选择语言",
	ModePrompt:         "❓ 初始化方式",
	ModeNewFolder:      "新建项目文件夹",
	ModeCurrentDir:     "在当前目录初始化",
	ProjectNamePrompt:  "📁 项目文件夹名称",
	NameEmpty:          "项目名称不能为空",
	NameTooLong:        "项目名称过长（最大支持100个字符）",
	NameInvalid:        "项目名称包含非法字符",
	TargetDir:          "✅ 目标目录: %s",
	DirExistsPrompt:    "⚠️  目标文件夹已存在，是否继续？",
	Cancelled:          "❌ 操作已取消",
	CreateDir:          "➕ 创建目录: %s",
	AddDir:             "➕ 补充目录: %s",
	PrefixChoicePrompt: "🔤 是否为环境变量添加项目前缀？（避免多项目冲突）",
	NoPrefix:           "否（使用通用名称，如 OUTPUT_DIR）",
	WithPrefix:         "是（如 MYPROJ_OUTPUT_DIR）",
	PrefixPrompt:       "🔤 项目前缀（建议大写，如 MYTOOL）",
	CreatedFile:        "➕ %s",
	UpdatedFile:        "🔄 更新: %s",
	SkipExisting:       "ℹ️  %s 已存在，跳过更新",
	GitInitPrompt:      "❓ 是否初始化 Git 仓库？",
	Yes:                "是",
	No:                 "否",
	GitInitialized:     "📦 Git 仓库已初始化",
	GitNotFound:        "⚠️  无法运行 git（是否已安装 Git？）: %s",
	GitInitFailed:      "⚠️  Git 初始化失败: %s",
	GitIdentityMissing: "⚠️  Git 用户信息未配置，跳过初始提交\n💡 运行以下命令设置：\n  git config --global user.name \"Your Name\"\n  git config --global user.email \"you@example.com\"",
	CommitPrompt:       "💾 是否创建初始提交？",
	GitAddFailed:       "⚠️  Git 添加失败: %s\n💡 建议检查：1. 工作区文件权限 2. Git 配置（user.name/user.email）",
	GitCommitFailed:    "⚠️  Git 提交失败: %s",
	CommitSuccess:      "💾 初始提交创建成功",
	LicensePrompt:      "📜 选择开源许可证（可选）",
	SkipLicense:        "跳过（不生成 LICENSE）",
	Proprietary:        "Proprietary（专有）",
	LicenseWritten:     "📜 LICENSE (%s)",
	IncrementalDone:    "✅ 项目结构已增量更新！",
	InitDone:           "✅ 通用项目初始化完成！",
	GuidePath:          "📄 查看使用指南: %s/%s",
	ReadmePath:         "📄 项目入口: %s/%s",
	EnvPath:            "⚙️  环境变量路径: %s/%s",
	PrefixAdded:        "🔑 环境变量已添加前缀: %s",
	DotenvTip:          "💡 提示：在脚本中通过 dotenv 加载路径，避免硬编码！",
	InitFailed:         "❌ 初始化失败: %s",
}

func table(l Locale) map[Key]string {
	if l == Chinese {
		return zh
	}
	return en
}

// Text returns the message for key in locale, falling back to English.
func Text(l Locale, key Key) string {
	if s, ok := table(l)[key]; ok {
		return s
	}
	return en[key]
}

// Format looks up key and applies fmt-style args.
func Format(l Locale, key Key, args ...interface{}) string {
	return fmt.Sprintf(Text(l, key), args...)
}
