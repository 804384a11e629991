package bot

import "github.com/m3rciful/shopbot/core/telegram/state"

// Conversation states. Each flow owns a contiguous group; the FSM holds at
// most one state per user, so entering a flow implicitly abandons any other.
const (
	stateCategoryTitle state.State = "category_title"

	stateProductTitle   state.State = "product_title"
	stateProductBody    state.State = "product_body"
	stateProductImage   state.State = "product_image"
	stateProductPrice   state.State = "product_price"
	stateProductConfirm state.State = "product_confirm"

	stateCheckoutCart    state.State = "checkout_cart"
	stateCheckoutName    state.State = "checkout_name"
	stateCheckoutAddress state.State = "checkout_address"
	stateCheckoutConfirm state.State = "checkout_confirm"

	stateAnswerText   state.State = "answer_text"
	stateAnswerSubmit state.State = "answer_submit"

	stateQuestionText   state.State = "question_text"
	stateQuestionSubmit state.State = "question_submit"
)

// productDraft accumulates a product under construction. The category is
// fixed at flow entry; the price stays a digit string until the final
// insert so the derived id matches what the admin actually typed.
type productDraft struct {
	CategoryID  string
	Title       string
	Body        string
	Image       []byte
	PriceDigits string
}

// checkoutDraft carries the reviewed cart plus the buyer details entered so
// far. Address survives a "back" to the name step until overwritten.
type checkoutDraft struct {
	Name    string
	Address string
}

// answerDraft tracks which user is being answered and the reply text.
type answerDraft struct {
	AskerID int64
	Answer  string
}

// questionDraft holds the user's question text pending confirmation.
type questionDraft struct {
	Text string
}
