package domain

import "testing"

func TestJournal_Allows(t *testing.T) {
	journal := Journal{
		Name:         "Science",
		IncludeTerms: []string{"research article", "research"},
		ExcludeTerms: []string{"perspective", "letter", "news"},
	}

	tests := []struct {
		name    string
		article Article
		want    bool
	}{
		{
			name:    "plain research article",
			article: Article{Title: "A new ribosome structure", Kind: "Research Article"},
			want:    true,
		},
		{
			name:    "excluded by kind label",
			article: Article{Title: "On the future of funding", Kind: "Perspective"},
			want:    false,
		},
		{
			name:    "excluded by title",
			article: Article{Title: "News at a glance"},
			want:    false,
		},
		{
			name:    "exclude is case-insensitive",
			article: Article{Title: "An open LETTER to reviewers"},
			want:    false,
		},
		{
			name:    "no kind label passes include check",
			article: Article{Title: "Structure of a membrane channel"},
			want:    true,
		},
		{
			name:    "kind label not in include terms",
			article: Article{Title: "Summer reading", Kind: "Books"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := journal.Allows(tt.article); got != tt.want {
				t.Errorf("Allows(%q/%q) = %v, want %v", tt.article.Title, tt.article.Kind, got, tt.want)
			}
		})
	}
}

func TestJournal_Allows_NoFilters(t *testing.T) {
	journal := Journal{Name: "Nature"}
	if !journal.Allows(Article{Title: "Anything", Kind: "Anything"}) {
		t.Error("journal without terms should allow everything")
	}
}
