package bot

// Reply-keyboard button labels. Incoming text is matched against these
// verbatim, so they double as routing keys.
const (
	btnUserMode  = "Пользователь"
	btnAdminMode = "Админ"

	btnCatalog        = "🛍️ Каталог"
	btnCart           = "🛒 Корзина"
	btnDeliveryStatus = "🚚 Статус заказа"
	btnCheckout       = "📦 Оформить заказ"

	btnSettings  = "⚙️ Настройка каталога"
	btnOrders    = "🚚 Заказы"
	btnQuestions = "❓ Вопросы"

	btnAddProduct     = "➕ Добавить товар"
	btnDeleteCategory = "🗑️ Удалить категорию"

	btnBack     = "👈 Назад"
	btnAllRight = "✅ Все верно"
	btnCancel   = "🚫 Отменить"
	btnConfirm  = "✅ Подтвердить заказ"
)

const textGreeting = `Привет! 👋

🤖 Я бот-магазин по продаже товаров любой категории.

🛍️ Чтобы перейти в каталог и выбрать приглянувшиеся
товары воспользуйтесь командой /menu.

❓ Возникли вопросы? Не проблема! Команда /sos поможет
связаться с админами, которые постараются как можно быстрее откликнуться.`

const (
	textAdminModeOn = "Включен админский режим."
	textUserModeOn  = "Включен пользовательский режим."
	textMenu        = "Меню"
	textAdminMenu   = "Админское меню"
	textUserMenu    = "Пользовательское меню"

	textPickCategory    = "Выберите раздел, чтобы вывести список товаров:"
	textCategoryEmpty   = "Здесь ничего нет 😢"
	textProductsInCat   = "Все доступные товары."
	textAddedToCart     = "Товар добавлен в корзину!"
	textCartEmpty       = "Ваша корзина пуста."
	textProceedCheckout = "Перейти к оформлению?"

	textAskName        = "Укажите свое имя."
	textAskAddress     = "Укажите свой адрес места жительства."
	textConfirmOrder   = "Убедитесь, что все правильно оформлено и подтвердите заказ."
	textNoSuchOption   = "Такого варианта не было."
	textOrderConfirmed = "Ок! Ваш заказ уже в пути 🚀\nИмя: <b>%s</b>\nАдрес: <b>%s</b>"

	textNoOrders = "У вас нет заказов."

	textCategorySettings = "Настройка категорий:"
	textAddCategoryBtn   = "+ Добавить категорию"
	textAskCategoryTitle = "Название категории?"
	textAdminCatProducts = "Все добавленные товары в эту категорию."
	textAddOrDelete      = "Хотите что-нибудь добавить или удалить?"
	textDone             = "Готово!"
	textCancelled        = "Ок, отменено!"
	textDeleteProductBtn = "🗑️ Удалить"
	textProductDeleted   = "Удалено!"

	textAskTitle       = "Название?"
	textAskBody        = "Описание?"
	textAskImage       = "Фото?"
	textAskPrice       = "Цена?"
	textNeedPhoto      = "Вам нужно прислать фото товара."
	textNeedDigits     = "Укажите цену в виде числа!"
	textAnotherImage   = "Другое изображение?"
	textChangeTitle    = "Изменить название с <b>%s</b>?"
	textChangeBody     = "Изменить описание с <b>%s</b>?"
	textChangePrice    = "Изменить цену с <b>%s</b>?"
	textChangeName     = "Изменить имя с <b>%s</b>?"
	textChangeAddress  = "Изменить адрес с <b>%s</b>?"
	textProductCard    = "<b>%s</b>\n\n%s\n\nЦена: %s рублей."
	textCatalogCard    = "<b>%s</b>\n\n%s"
	textCartCard       = "<b>%s</b>\n\n%s\n\nЦена: %d₽."
	textAddToCartBtn   = "Добавить в корзину - %d₽"
	textCartQuantity   = "Количество - %d"
	textOrderLine      = "Заказ <b>№%s</b>\n\n"
	textCheckoutLine   = "<b>%s</b> * %dшт. = %d₽\n"
	textCheckoutTotal  = "%s\nОбщая сумма заказа: %d₽."
	textNoQuestions    = "Нет вопросов."
	textAnswerBtn      = "Ответить"
	textAskAnswer      = "Напиши ответ."
	textCheckAnswer    = "Убедитесь, что не ошиблись в ответе."
	textAnswerSent     = "Отправлено!"
	textAnswerCancel   = "Отменено!"
	textQuestionAnswer = "Вопрос: <b>%s</b>\n\nОтвет: <b>%s</b>"

	textAskQuestion   = "Задайте свой вопрос, и администратор ответит на него как можно быстрее."
	textCheckQuestion = "Убедитесь, что все верно."
	textQuestionSent  = "Отправлено! Ожидайте ответа администратора."

	textFailure = "Что-то пошло не так, попробуйте позже."
)
