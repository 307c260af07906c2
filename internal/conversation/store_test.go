package conversation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	n := 0
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return NewStore(
		WithClock(func() time.Time { return fixed }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("msg-%d", n)
		}),
	)
}

func TestAppend_RejectsBlank(t *testing.T) {
	blanks := []string{"", " ", "   ", "\n", "\t \n ", "\r\n"}
	for _, s := range blanks {
		st := newTestStore()
		assert.False(t, st.Append(s), "input %q", s)
		assert.Empty(t, st.Messages(), "input %q", s)
	}
}

func TestAppend_TrimsAndTagsUser(t *testing.T) {
	st := newTestStore()

	require.True(t, st.Append("  Hello \n"))

	msgs := st.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "Hello", msgs[0].Text)
	assert.Equal(t, SenderUser, msgs[0].Sender)
	assert.Equal(t, "msg-1", msgs[0].ID)
	assert.True(t, msgs[0].IsUser())
}

func TestAppend_PreservesPriorEntries(t *testing.T) {
	st := newTestStore()
	inputs := []string{"one", "  ", "two", "", "three"}
	for _, in := range inputs {
		st.Append(in)
	}

	msgs := st.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "one", msgs[0].Text)
	assert.Equal(t, "two", msgs[1].Text)
	assert.Equal(t, "three", msgs[2].Text)
}

func TestMessages_ReturnsCopy(t *testing.T) {
	st := newTestStore()
	st.Append("original")

	msgs := st.Messages()
	msgs[0].Text = "changed"

	assert.Equal(t, "original", st.Messages()[0].Text)
}

func TestSubmit_ClearsDraftOnSuccess(t *testing.T) {
	st := newTestStore()
	st.SetDraft("Hello")

	msg, ok := st.Submit()

	require.True(t, ok)
	assert.Equal(t, "Hello", msg.Text)
	assert.Equal(t, "", st.Draft())
	assert.Equal(t, []Message{msg}, st.Messages())
}

func TestSubmit_KeepsDraftOnRejection(t *testing.T) {
	st := newTestStore()
	st.SetDraft("   ")

	_, ok := st.Submit()

	assert.False(t, ok)
	assert.Equal(t, "   ", st.Draft())
	assert.Empty(t, st.Messages())
}

func TestSubmit_MultilineDraft(t *testing.T) {
	st := newTestStore()
	st.SetDraft("line1\nline2\n")

	msg, ok := st.Submit()

	require.True(t, ok)
	assert.Equal(t, "line1\nline2", msg.Text)
}

func TestAppendReply_TagsAssistant(t *testing.T) {
	st := newTestStore()
	st.Append("question")

	require.True(t, st.AppendReply(" answer "))
	assert.False(t, st.AppendReply(" "))

	last, ok := st.Last()
	require.True(t, ok)
	assert.Equal(t, SenderAssistant, last.Sender)
	assert.Equal(t, "answer", last.Text)
	assert.Equal(t, 2, st.Len())
}

func TestRecent(t *testing.T) {
	st := newTestStore()
	for i := 1; i <= 5; i++ {
		st.Append(fmt.Sprintf("m%d", i))
	}

	recent := st.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "m4", recent[0].Text)
	assert.Equal(t, "m5", recent[1].Text)

	assert.Len(t, st.Recent(0), 5)
	assert.Len(t, st.Recent(10), 5)
}

func TestLast_Empty(t *testing.T) {
	_, ok := newTestStore().Last()
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	got, err := Validate("  hi  ")
	require.NoError(t, err)
	assert.Equal(t, "hi", got)

	_, err = Validate(" \t")
	assert.ErrorIs(t, err, ErrInvalidSubmission)
}

func TestSender_Valid(t *testing.T) {
	assert.True(t, SenderUser.Valid())
	assert.True(t, SenderAssistant.Valid())
	assert.False(t, Sender("bot").Valid())
}
