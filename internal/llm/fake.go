package llm

import "context"

// FakeClient is a test double that records prompts and returns canned
// replies.
type FakeClient struct {
	Reply     string
	JSONReply string
	Err       error

	Prompts     []string
	JSONPrompts []string
}

// Complete implements Client
func (f *FakeClient) Complete(ctx context.Context, prompt string) (string, error) {
	f.Prompts = append(f.Prompts, prompt)
	if f.Err != nil {
		return "", f.Err
	}
	return f.Reply, nil
}

// CompleteJSON implements Client
func (f *FakeClient) CompleteJSON(ctx context.Context, prompt string) (string, error) {
	f.JSONPrompts = append(f.JSONPrompts, prompt)
	if f.Err != nil {
		return "", f.Err
	}
	return f.JSONReply, nil
}
