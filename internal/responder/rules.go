package responder

import (
	"fmt"
	"strings"

	"github.com/honekiti/portfolio/internal/profile"
)

// Rule names, in evaluation order.
const (
	RuleSpecialization = "specialization"
	RuleResearch       = "research"
	RuleProjects       = "projects"
	RuleExperience     = "experience"
	RuleSkills         = "skills"
	RuleProfile        = "profile"
	RuleAchievements   = "achievements"
	RuleContact        = "contact"

	// RuleFallback is reported when no rule matched.
	RuleFallback = "fallback"
)

// KeywordRule pairs lowercase trigger substrings with a response template.
type KeywordRule struct {
	Name     string
	Triggers []string
	Respond  func(p *profile.Profile) string
}

// Matches reports whether any trigger is a substring of normalized.
func (r KeywordRule) Matches(normalized string) bool {
	for _, t := range r.Triggers {
		if strings.Contains(normalized, t) {
			return true
		}
	}
	return false
}

// Fallbacks are the two canned answers used when nothing matches.
var Fallbacks = [2]string{
	"すみません、その質問にはうまくお答えできません。専門分野、研究、プロジェクト、経験、スキル、実績、連絡先について聞いてみてください。",
	"ごめんなさい、よくわかりませんでした。「研究について教えて」や「スキルは？」のように質問してみてください。",
}

// DefaultRules returns the rule list in its fixed evaluation order. The
// first matching rule wins; there is no scoring between groups.
func DefaultRules() []KeywordRule {
	return []KeywordRule{
		{
			Name:     RuleSpecialization,
			Triggers: []string{"専門", "専攻", "specialization", "specialty", "major"},
			Respond:  specializationAnswer,
		},
		{
			Name:     RuleResearch,
			Triggers: []string{"研究", "research", "thesis"},
			Respond:  researchAnswer,
		},
		{
			Name:     RuleProjects,
			Triggers: []string{"プロジェクト", "作品", "制作", "project"},
			Respond:  projectsAnswer,
		},
		{
			Name:     RuleExperience,
			Triggers: []string{"経験", "インターン", "職歴", "experience", "intern", "career"},
			Respond:  experienceAnswer,
		},
		{
			Name:     RuleSkills,
			Triggers: []string{"スキル", "技術", "言語", "skill", "language", "framework"},
			Respond:  skillsAnswer,
		},
		{
			Name:     RuleProfile,
			Triggers: []string{"名前", "自己紹介", "大学", "プロフィール", "name", "who are you", "university", "about you"},
			Respond:  profileAnswer,
		},
		{
			Name:     RuleAchievements,
			Triggers: []string{"実績", "受賞", "ハッカソン", "achievement", "award", "hackathon"},
			Respond:  achievementsAnswer,
		},
		{
			Name:     RuleContact,
			Triggers: []string{"連絡", "メール", "電話", "contact", "email", "phone", "github"},
			Respond:  contactAnswer,
		},
	}
}

func specializationAnswer(p *profile.Profile) string {
	b := p.Basic
	return fmt.Sprintf("私の専門は%sです。%s %s %sで学んでいます。",
		b.Specialization, b.University, b.Department, b.Course)
}

func researchAnswer(p *profile.Profile) string {
	return fmt.Sprintf("私の研究テーマは「%s」です。\n%s", p.Research.Title, p.Research.Description)
}

func projectsAnswer(p *profile.Profile) string {
	var sb strings.Builder
	sb.WriteString("これまでに取り組んだプロジェクトを紹介します。\n")
	for i, pr := range p.Projects {
		fmt.Fprintf(&sb, "\n%d. %s\n   %s\n   使用技術: %s\n", i+1, pr.Name, pr.Description, strings.Join(pr.Tech, ", "))
	}
	return sb.String()
}

func experienceAnswer(p *profile.Profile) string {
	var sb strings.Builder
	sb.WriteString("これまでの経験は以下のとおりです。\n")
	for i, e := range p.Experience {
		fmt.Fprintf(&sb, "\n%d. %s（%s）\n   役割: %s\n   %s\n   使用技術: %s\n",
			i+1, e.Organization, e.Period, e.Role, e.Description, strings.Join(e.Tech, ", "))
	}
	return sb.String()
}

func skillsAnswer(p *profile.Profile) string {
	s := p.Skills
	return fmt.Sprintf("主なスキルです。\n言語: %s\nフレームワーク: %s\nツール: %s",
		strings.Join(s.Languages, ", "), strings.Join(s.Frameworks, ", "), strings.Join(s.Tools, ", "))
}

func profileAnswer(p *profile.Profile) string {
	b := p.Basic
	return fmt.Sprintf("%s（%s）です。%s %s %s %sに所属しています。",
		b.Name, b.LatinName, b.University, b.Faculty, b.Department, b.Course)
}

func achievementsAnswer(p *profile.Profile) string {
	var sb strings.Builder
	sb.WriteString("主な実績です。\n")
	for i, a := range p.Achievements {
		fmt.Fprintf(&sb, "\n%d. %s「%s」\n   %s\n   結果: %s\n", i+1, a.Event, a.Name, a.Description, a.Result)
	}
	return sb.String()
}

func contactAnswer(p *profile.Profile) string {
	c := p.Contact
	var sb strings.Builder
	fmt.Fprintf(&sb, "連絡先はこちらです。\nメール: %s\nGitHub: %s", c.Email, c.GitHub)
	if c.Phone != "" {
		fmt.Fprintf(&sb, "\n電話: %s", c.Phone)
	}
	return sb.String()
}
