package bot

import (
	"fmt"
	"strconv"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/shopbot/core/telegram/callbacks"
	"github.com/m3rciful/shopbot/core/telegram/helpers"
	"github.com/m3rciful/shopbot/core/telegram/keyboard"
	"github.com/m3rciful/shopbot/core/telegram/state"
)

// listQuestions shows every pending question with an answer button. The
// button payload carries the asker's chat id so the reply can be delivered.
func (a *App) listQuestions(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	questions, err := a.repo.Questions(ctx)
	if err != nil {
		return a.fail(c, err)
	}

	if len(questions) == 0 {
		return helpers.SendText(c, textNoQuestions)
	}

	helpers.Typing(c)
	for _, q := range questions {
		markup := keyboard.InlineButtons([]keyboard.InlineBtn{{
			Text:   textAnswerBtn,
			Unique: "question",
			Data:   callbacks.Encode(strconv.FormatInt(q.UserID, 10), "answer"),
		}})
		if err := helpers.SendHTML(c, q.Text, markup); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) startAnswerFlow(c tele.Context, askerID string) error {
	id, err := strconv.ParseInt(askerID, 10, 64)
	if err != nil {
		return a.dropCallback(c, "bad asker id "+askerID)
	}
	a.fsm.SetDraft(a.userID(c), &answerDraft{AskerID: id})
	a.fsm.SetState(a.userID(c), stateAnswerText)
	_ = c.Respond()
	return helpers.SendHTML(c, textAskAnswer, keyboard.RemoveKeyboard())
}

func (a *App) onAnswerText(c tele.Context) error {
	draft, ok := state.DraftAs[*answerDraft](a.fsm, a.userID(c))
	if !ok {
		a.fsm.Clear(a.userID(c))
		return nil
	}
	if c.Text() == "" {
		return helpers.SendHTML(c, textAskAnswer, keyboard.RemoveKeyboard())
	}
	draft.Answer = c.Text()
	a.fsm.SetState(a.userID(c), stateAnswerSubmit)
	return helpers.SendHTML(c, textCheckAnswer, submitMarkup())
}

func (a *App) onAnswerSubmit(c tele.Context) error {
	draft, ok := state.DraftAs[*answerDraft](a.fsm, a.userID(c))
	if !ok {
		a.fsm.Clear(a.userID(c))
		return nil
	}

	switch c.Text() {
	case btnCancel:
		a.fsm.Clear(a.userID(c))
		return helpers.SendHTML(c, textAnswerCancel, keyboard.RemoveKeyboard())
	case btnAllRight:
		ctx := helpers.BuildContext(c)
		question, err := a.repo.QuestionFor(ctx, draft.AskerID)
		if err != nil {
			return a.fail(c, err)
		}
		// Answering closes every question the user has pending.
		if err := a.repo.DeleteQuestionsFor(ctx, draft.AskerID); err != nil {
			return a.fail(c, err)
		}
		a.fsm.Clear(a.userID(c))

		if err := helpers.SendHTML(c, textAnswerSent, keyboard.RemoveKeyboard()); err != nil {
			return err
		}
		reply := fmt.Sprintf(textQuestionAnswer, question.Text, draft.Answer)
		_, err = c.Bot().Send(&tele.User{ID: draft.AskerID}, reply,
			&tele.SendOptions{ParseMode: tele.ModeHTML})
		return err
	}
	return helpers.ReplyHTML(c, textNoSuchOption)
}
