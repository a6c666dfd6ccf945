// pkg/ai/mock_client.go

package ai

import (
	"context"
	"fmt"
	"time"
)

// MockClient produces a canned plan when no API key is supplied. The delay
// keeps the UI behaving like a real call.
type MockClient struct {
	delay time.Duration
}

func NewMock(delay time.Duration) *MockClient { return &MockClient{delay: delay} }

// Plan always succeeds. A cancelled ctx only cuts the delay short.
func (m *MockClient) Plan(ctx context.Context, summary string) string {
	if m.delay > 0 {
		t := time.NewTimer(m.delay)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
		}
	}
	return fmt.Sprintf(mockPlanTemplate, summary)
}

const mockPlanTemplate = `
### (MOCK MODE) Content Planner for: "%s"
*To see real AI results, please enter a Gemini API Key in the settings panel.*

#### 💡 Post Ideas
1. **POV Action:** High energy cuts.
2. **Fail Compilation:** Funny set to upbeat music.
3. **Scenery:** Slow pans of the view.

#### 🎬 Reel Storyline
| Stage | Duration | Visual |
| :--- | :--- | :--- |
| Hook | 1s | The best moment first. |
| Body | 5s | Fast cuts of action. |
| Outro | 2s | High fives. |

#### ✍️ Captions
1. Best day ever! 🏔️
2. Rate this 1-10.
3. Wait for the end...
`
