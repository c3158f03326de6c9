package analyze

import "strings"

// MaxPromptChars bounds how much paper text goes into the prompt.
// Long papers are clipped from the end; the front matter carries the
// abstract, introduction, and contributions, which matter most.
const MaxPromptChars = 25000

const analysisInstructions = `You are an expert research analyst specializing in academic paper analysis. Your task is to thoroughly analyze the following research paper and provide a comprehensive breakdown.

Please analyze the paper and extract the following information:

## ANALYSIS REQUIREMENTS:

Please provide a detailed analysis with the following sections. Be specific, thorough, and extract exact information from the paper:

### 1. ABSTRACT
Summarize the abstract in 2-3 sentences. What is the core focus of this paper?

### 2. INTRODUCTION
Summarize the introduction and related work:
- What is the research area and context?
- How does this work relate to prior approaches?

### 3. MOTIVATION
What problem or gap in existing research motivated this work?
- What are the key issues or limitations in current approaches?
- Why is this research necessary or timely?
- What real-world problem does it address?

### 4. CONTRIBUTION
What are the main contributions of this paper?
- Novel algorithms, methods, or frameworks proposed
- New datasets or benchmarks introduced
- Theoretical contributions or proofs
- Practical improvements over existing methods
- Be specific and list each contribution clearly

### 5. METHODOLOGY
Explain the technical approach:
- What is the main idea or framework proposed?
- Describe the key technical components or architecture
- What algorithms or techniques are used?
- How does the method work (step-by-step)?
- What makes this approach innovative or unique?

### 6. EXPERIMENTS & RESULTS
Describe the experimental evaluation:
- What datasets were used?
- What baselines or comparison methods were evaluated against?
- What metrics were used for evaluation?
- What are the key quantitative results?
- Any significant performance improvements or discoveries?

### 7. LIMITATIONS & CHALLENGES
Discuss the limitations acknowledged by the authors:
- What are the stated limitations of the proposed method?
- What assumptions does the method make?
- Any computational or resource constraints?
- What challenges remain unsolved?

### 8. FUTURE WORK
What future work do the authors suggest?
- What extensions or improvements are proposed?
- What open questions remain?

### 9. CONCLUSION
Summarize the main conclusion:
- What are the key takeaways?
- How does this work advance the field?

## FORMATTING:
Within each section you may use this Markdown subset and nothing else:
- "## Heading" and "### Heading" for section headings
- "- item" bullets (one level of nesting allowed)
- "1. item" numbered lists
- **bold**, *italic*, ` + "`code`" + `, [link](url) inline
- fenced code blocks with three backticks

## RESPONSE FORMAT:
Respond with ONLY a JSON object in this exact format, no other text:

{
    "abstract": "Brief summary of the abstract...",
    "introduction": "Introduction and related work...",
    "motivation": "Detailed explanation of motivation...",
    "contribution": "List of key contributions...",
    "methodology": "Technical methodology and framework...",
    "experiments": "Experiments, results, and findings...",
    "limitations": "Limitations and challenges...",
    "future_work": "Suggested future work...",
    "conclusion": "Main conclusions and impact..."
}

Ensure your analysis is:
- Accurate and based only on the paper content
- Specific and detailed, not vague
- Well-structured and easy to understand
- Professional and scholarly in tone`

// BuildPrompt creates the full analysis prompt for a paper's text.
func BuildPrompt(paperText string) string {
	clipped := ClipText(paperText, MaxPromptChars)

	var sb strings.Builder
	sb.WriteString(analysisInstructions)
	sb.WriteString("\n\n## PAPER CONTENT:\n")
	sb.WriteString(clipped)
	return sb.String()
}

// ClipText truncates text to at most limit characters, cutting at the
// last line boundary before the limit when one is close enough.
func ClipText(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}
	clipped := text[:limit]
	if i := strings.LastIndexByte(clipped, '\n'); i > limit-200 {
		clipped = clipped[:i]
	}
	return clipped
}
