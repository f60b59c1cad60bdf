package chat

import (
	"fmt"
	"strings"

	"github.com/astra-cloud/astra/internal/core/model"
)

const promptRole = `You are an expert cloud architect and software engineering consultant specializing in modern full-stack architectures, microservices, cloud platforms (AWS, GCP, Azure), and DevOps best practices.

Your role is to:
1. Provide technical guidance on architecture design
2. Recommend appropriate technologies and components
3. Explain cost-benefit tradeoffs
4. Suggest scalability and reliability improvements
5. Answer questions about cloud platforms and best practices`

const promptGuidelines = `Guidelines:
- Be concise and technical
- Recommend specific technologies from the available component library
- Consider the project scope when making recommendations
- Explain WHY you recommend certain technologies
- If asked to create/design/visualize architecture, mention specific component names
- When you detect scope parameters (user count, traffic, data volume, regions, availability) in the conversation, you MUST output them in a JSON code block like this:

` + "```json" + `
{
  "scope_analysis": {
    "users": 50000,
    "trafficLevel": 4,
    "dataVolumeGB": 2000,
    "regions": 3,
    "availability": 99.95
  }
}
` + "```"

func buildSystemPrompt(scope *model.Scope, context string) string {
	var b strings.Builder
	b.WriteString(promptRole)
	b.WriteString("\n\n")

	if scope != nil {
		fmt.Fprintf(&b, `Current Project Scope:
- Users: %d
- Traffic Level: %d/5
- Data Volume: %g GB
- Regions: %d
- Availability: %g%%

`, scope.Users, scope.TrafficLevel, scope.DataVolumeGB, scope.Regions, scope.Availability)
	}

	if context != "" {
		b.WriteString("### Knowledge Base Context\n")
		b.WriteString(context)
		b.WriteString("\n\n")
	}

	b.WriteString(promptGuidelines)
	return b.String()
}

// buildPrompt assembles the full generation prompt: system prompt, the
// last ten messages of history, the current message, then the assistant
// cue.
func buildPrompt(system string, history []Message, userMessage string) string {
	var b strings.Builder
	b.WriteString(system)
	b.WriteString("\n\n")

	if len(history) > 10 {
		history = history[len(history)-10:]
	}
	for _, msg := range history {
		fmt.Fprintf(&b, "%s: %s\n", strings.ToUpper(msg.Role), msg.Content)
	}

	fmt.Fprintf(&b, "USER: %s\n\nASSISTANT:", userMessage)
	return b.String()
}

func demoReply(userMessage string) string {
	return fmt.Sprintf(`**Astra is running in demo mode**

To enable AI-powered architecture recommendations, set an LLM provider and API key in the server configuration and restart.

You asked: %q

For now, you can still use the visual canvas to manually design architectures!`, userMessage)
}
