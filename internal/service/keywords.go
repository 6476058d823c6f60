package service

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

// stopwords filtered out before matching queries against the knowledge base.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"a an the and or but is are was were be been being in on at to for with by " +
			"about against between into through during before after above below from up " +
			"down of off over under again further then once here there when where why " +
			"how all any both each few more most other some such no nor not only own " +
			"same so than too very s t can will just don should now i me my myself we " +
			"our ours ourselves you your yours yourself he him his she her hers it its " +
			"they them their theirs what which who whom this that these those am have " +
			"has had do does did doing would could ought get gets got gotten") {
		stopwords[w] = struct{}{}
	}
}

// extractKeywords tokenizes text and removes stopwords and single characters.
func extractKeywords(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	keywords := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) < 2 {
			continue
		}
		if _, skip := stopwords[word]; skip {
			continue
		}
		keywords = append(keywords, word)
	}
	return keywords
}

// keywordSet builds a membership set.
func keywordSet(keywords []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		set[k] = struct{}{}
	}
	return set
}
