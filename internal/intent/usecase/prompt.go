package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"voice-intent/internal/intent"
	"voice-intent/internal/model"
)

// BuildSystemPrompt renders the classification instructions for a function
// catalog. It is pure: the same catalog always yields the same prompt.
func BuildSystemPrompt(functions []model.FunctionDescriptor) string {
	var sb strings.Builder

	sb.WriteString("[Strict Formatting Requirements] You must return only JSON format and absolutely cannot return any natural language!\n\n")
	sb.WriteString("You are an intent recognition assistant. Please analyze the user's last sentence, determine the user's intent, and call the corresponding function.\n\n")

	sb.WriteString(`【Important Rule】For the following types of queries, please return result_for_context directly without calling a function:
- Query the current time (e.g., what time is it now, current time, query time, etc.)
- Ask for today's date (e.g., what's today's date, what day of the week it is, what is the date today, etc.)
- Ask about today's lunar calendar date (e.g., what is today's lunar date, what solar term is today, etc.)
- Ask about the city you are in (e.g., Where am I now? Do you know which city I am in?)
The system will construct an answer directly based on the context information.

- If a user asks a question related to exiting (e.g., 'How do I exit?') using interrogative words (such as 'how', 'why', 'how to'), note that this does not mean they want to exit. Please return {"function_call": {"name": "continue_chat"}}.
- The handle_exit_intent is only triggered when the user explicitly uses commands such as 'exit system', 'end conversation', or 'I don't want to talk to you anymore'.

`)

	writeFunctions(&sb, functions)

	sb.WriteString(`
Processing steps:
1. Analyze user input to determine user intent
2. Check if the query is for the basic information mentioned above (time, date, etc.). If so, return result_for_context.
3. Select the best matching function from the list of available functions.
4. If a matching function is found, generate the corresponding function_call format.
5. If no matching function is found, return {"function_call": {"name": "continue_chat"}}

Return format requirements：
1. The returned data must be in plain JSON format and must not contain any other text.
2. The function_call field must be included.
3. The function_call must include a name field.
4. If a function requires arguments, it must include the arguments field.

Example：
`)

	for _, ex := range promptExamples {
		fmt.Fprintf(&sb, "```\nUser: %s\nReturn: %s\n```\n", ex.user, ex.result)
	}

	sb.WriteString(`
Notice：
1. Return only JSON format, do not include any other text.
2. First, check if the user query is for basic information (time, date, etc.); if so, return {"function_call": {"name": "result_for_context"}}, the arguments parameter is not needed.
3. If no matching function is found, return {"function_call": {"name": "continue_chat"}}
4. Ensure the returned JSON is in the correct format and contains all necessary fields.
5. The result_for_context function requires no parameters; the system will automatically retrieve information from the context.
Special Notes：
- When a user inputs multiple commands in a single instance (such as 'turn on the light and turn up the volume'), return a single function_call for the first command only.
- Never return a list or a "function_calls" field.

[Final Warning] Outputting any natural language, emojis, or explanatory text is strictly prohibited! Only valid JSON format is allowed! Violating this rule will result in a system error!`)

	return sb.String()
}

func writeFunctions(sb *strings.Builder, functions []model.FunctionDescriptor) {
	sb.WriteString("List of available functions：\n")
	for _, fn := range functions {
		fmt.Fprintf(sb, "\nFunction name: %s\n", fn.Name)
		fmt.Fprintf(sb, "Description: %s\n", fn.Description)
		if len(fn.Parameters) > 0 {
			sb.WriteString("Parameter:\n")
			for _, p := range fn.Parameters {
				fmt.Fprintf(sb, "- %s (%s): %s\n", p.Name, p.Type, p.Description)
			}
		}
		sb.WriteString("---\n")
	}
}

type promptExample struct {
	user   string
	result string
}

var promptExamples = []promptExample{
	{"What time is it now?", `{"function_call": {"name": "result_for_context"}}`},
	{"What is the current battery level?", `{"function_call": {"name": "get_battery_level", "arguments": {"response_success": "Current battery level is {value}%", "response_failure": "Unable to obtain the current battery percentage"}}}`},
	{"What is the current screen brightness?", `{"function_call": {"name": "self_screen_get_brightness"}}`},
	{"Set the screen brightness to 50%", `{"function_call": {"name": "self_screen_set_brightness", "arguments": {"brightness": 50}}}`},
	{"I want to end this conversation.", `{"function_call": {"name": "handle_exit_intent", "arguments": {"say_goodbye": "goodbye"}}}`},
	{"How do I exit?", `{"function_call": {"name": "continue_chat"}}`},
	{"Hello", `{"function_call": {"name": "continue_chat"}}`},
	{"Turn on the light and turn up the volume", `{"function_call": {"name": "light_on"}}`},
}

// ambientBlock is appended to the memoized prompt on every call.
func ambientBlock(musicNames []string, home *intent.SmartHomeContext) string {
	var sb strings.Builder

	names, _ := json.Marshal(nonNil(musicNames))
	fmt.Fprintf(&sb, "\n<musicNames>%s\n</musicNames>", names)

	if home != nil && len(home.Devices) > 0 {
		sb.WriteString(smartHomeHeader)
		for _, d := range home.Devices {
			sb.WriteString(d)
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
