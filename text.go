package main

var (
	Brand = "portfolio"

	Footer = "Copyright © Amon Kikuchi 2023"

	PrivacyTitle = "Privacy Policy"

	ChatWelcome = `こんにちは！菊地亜紋のポートフォリオアシスタントです。
	専門分野、研究、プロジェクト、経験、スキル、実績、連絡先について質問してください。`

	ChatGoodbye = "ご覧いただきありがとうございました！"
)
