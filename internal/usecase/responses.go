package usecase

// Foydalanuvchiga ko'rinadigan barcha tayyor javob matnlari.
const (
	msgAskQuestion = "من فضلك اكتب سؤالك."

	msgInternalError = "حصل خطأ داخلي أثناء معالجة طلبك. حاول مرة أخرى أو تواصل مع الدعم."

	msgNoLowStock = "✅ لا توجد أصناف منخفضة حالياً."

	msgNoCustomers = "لا توجد بيانات عن العملاء حالياً."

	msgBackupInfo = "🔰 لعمل نسخة احتياطية: استخدم الأمر /export أو اضغط زر 'نسخ احتياطي' في لوحة الإدارة."

	msgHelp = `مرحباً! يمكنك سؤالي أمثلة مثل:
- "كم عدد الأصناف؟"
- "هل عندي أصناف ناقصة؟"
- "كم عدد الفواتير اليوم؟"
- "ما سعر كابل 1.5مم؟"
- "من هم أفضل 5 عملاء؟"`

	msgFallback = `عذراً لم أفهم سؤالك تمامًا. جرّب: "كم عدد الأصناف؟" أو "هل عندي أصناف ناقصة؟" أو "كم عدد فواتير اليوم؟"`
)
