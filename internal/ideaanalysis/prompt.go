package ideaanalysis

import "fmt"

const analysisPromptTemplate = `As an AI startup analyst, provide a comprehensive analysis for the startup idea: "%s". Structure your response in the following format:

## 1. Market Trend Analysis
- Current domestic and global market size (amount):
- Key consumer trends:
- Core technologies or innovations driving the market:

## 2. Competitive Landscape
- Major domestic and international competitors, with the strengths and weaknesses of each:
- Market share of the top 3 companies:
- Main barriers to entry:
- Threat level of substitute products or services:

## 3. Growth Outlook
- Expected market growth rate over the next 3 and 5 years:
- Growth outlook under optimistic, neutral, and pessimistic scenarios:
- Major external factors that could affect market growth:

## 4. Success Case Analysis
- Successful domestic and international companies:
- Key success factors of each case:
- Initial entry strategy and major turning points during growth:
- Points of differentiation from competitors:

## 5. Failure Case Analysis
- Failed domestic and international companies:
- Main causes of failure in each case:
- Concrete measures to overcome those failures:
- Key lessons from each failure case:

## 6. Key Success Factors
- Key success factors (with importance on a 1-10 scale):
- Fit of the proposed idea against each success factor, and how to improve it:
- Strategic recommendations for the long-term success of the idea:

Provide detailed and data-driven insights for each section. Use realistic but imaginary data where specific numbers are required. Ensure the analysis is comprehensive and tailored to the specific startup idea.`

// BuildPrompt embeds idea verbatim into the fixed analysis template.
func BuildPrompt(idea string) string {
	return fmt.Sprintf(analysisPromptTemplate, idea)
}
