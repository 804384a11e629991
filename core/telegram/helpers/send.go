package helpers

import (
	"bytes"

	tele "gopkg.in/telebot.v4"
)

// SendText sends raw text (no parse mode) to the current recipient.
func SendText(c tele.Context, text string, opts ...*tele.SendOptions) error {
	if len(opts) > 0 && opts[0] != nil {
		return c.Send(text, opts[0])
	}
	return c.Send(text)
}

// SendHTML sends a message with HTML parse mode and optional reply markup.
func SendHTML(c tele.Context, text string, markup ...*tele.ReplyMarkup) error {
	var rm *tele.ReplyMarkup
	if len(markup) > 0 {
		rm = markup[0]
	}
	return c.Send(text, &tele.SendOptions{ParseMode: tele.ModeHTML, ReplyMarkup: rm})
}

// ReplyHTML replies to the incoming message with HTML parse mode.
func ReplyHTML(c tele.Context, text string) error {
	return c.Reply(text, &tele.SendOptions{ParseMode: tele.ModeHTML})
}

// SendPhotoHTML sends an image blob with an HTML caption and optional inline markup.
func SendPhotoHTML(c tele.Context, image []byte, caption string, markup ...*tele.ReplyMarkup) error {
	var rm *tele.ReplyMarkup
	if len(markup) > 0 {
		rm = markup[0]
	}
	photo := &tele.Photo{
		File:    tele.FromReader(bytes.NewReader(image)),
		Caption: caption,
	}
	return c.Send(photo, &tele.SendOptions{ParseMode: tele.ModeHTML, ReplyMarkup: rm})
}

// Typing shows the "typing..." chat action; failures are not interesting.
func Typing(c tele.Context) {
	_ = c.Notify(tele.Typing)
}

// DeleteMessage removes the message the update refers to, ignoring errors
// for messages that are already gone.
func DeleteMessage(c tele.Context) {
	_ = c.Delete()
}
