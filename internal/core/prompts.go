package core

import "fmt"

const basicAnalysisTemplate = `Analyze the following English word: %q

Follow this exact format:

Pronunciation (American)
**IPA**: [exact IPA transcription]
**Respelling**: [plain-letter pronunciation]
**Stress**: [stressed syllable and vowel length]

Primary meanings (2-3)
* [meaning 1]
* [meaning 2]
* [meaning 3]

Example sentences (3)
1.
Sentence: [English sentence 1]
Meaning used: [which primary meaning it uses]

2.
Sentence: [English sentence 2]
Meaning used: [which primary meaning it uses]

3.
Sentence: [English sentence 3]
Meaning used: [which primary meaning it uses]

Rules:
1. Every example sentence must use one of the primary meanings listed above
2. Meaning 1 is the dominant sense, meaning 2 a secondary sense, meaning 3 a different part of speech
3. Do not list the same sense twice merely as different parts of speech
4. Keep everything short, plain text only`

const advancedAnalysisTemplate = `Give an in-depth analysis of the English word: %q

Follow this exact format:

Common idioms
1. [idiom 1]
- [meaning]

2. [idiom 2]
- [meaning]

Deeper meaning
**Analogy**: %q is like **[a fitting analogy]**. [develop the analogy in 2-3 sentences]

**Etymology and extension**
* derived from **[root meaning]** -> [how the sense shifted]
* [how the meaning broadened]
* [modern extended uses]

Synonyms
1. [synonym 1] - [sense covered]
2. [synonym 2] - [sense covered]
3. [synonym 3] - [sense covered]

Rules:
1. Give only short glosses for idioms
2. Make the analogy concrete and story-like, never abstract
3. Do not tie the analogy directly to the word's literal sense
4. One gloss per synonym, no contrast notes
5. The synonyms together should reflect the word's polysemy
6. Keep everything brief, plain text only`

func basicPrompt(word string) string {
	return fmt.Sprintf(basicAnalysisTemplate, word)
}

func advancedPrompt(word string) string {
	return fmt.Sprintf(advancedAnalysisTemplate, word, word)
}
