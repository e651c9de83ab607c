package chat

// chatPage is the widget served inside the site iframe. Bubbles get a
// fade-in, the loader bar shows while a submission is in flight.
const chatPage = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Gradient M Chatbot</title>
  <link rel="preconnect" href="https://fonts.googleapis.com">
  <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
  <link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;600&display=swap" rel="stylesheet">
  <style>
    html,body{margin:0;padding:0;height:100%;font-family:'Inter',sans-serif}
    body{display:flex;align-items:center;justify-content:center;background:#f2f2f2}
    .chat-container{width:100vw;height:100vh;display:flex;flex-direction:column;background:#fff;overflow:hidden}
    .chat-header{background:#fff;border-bottom:1px solid #e0e0e0;padding:16px;text-align:center;font-weight:600;font-size:1.2rem;position:relative}
    .chat-header a{position:absolute;right:16px;top:50%;transform:translateY(-50%);font-size:.9rem;color:#3f51b5;text-decoration:underline}
    .loading-indicator{display:none;width:100%;height:4px;background:linear-gradient(90deg,#4A90E2,#76c7c0,#4A90E2);background-size:200% 100%;animation:load 1.5s linear infinite}
    @keyframes load{0%{background-position:0 0}100%{background-position:200% 0}}
    .chat-messages{flex:1;padding:16px;overflow-y:auto;display:flex;flex-direction:column;gap:12px}
    .chat-messages::-webkit-scrollbar{width:6px}
    .chat-messages::-webkit-scrollbar-thumb{background:#ccc;border-radius:4px}
    .message{max-width:80%;display:flex;flex-direction:column}
    .assistant{align-self:flex-start}.user{align-self:flex-end;text-align:right}
    .bubble{padding:12px 16px;border-radius:8px;background:#f1f1f1;animation:fade .3s forwards}
    .user .bubble{background:#e7f0fd}
    @keyframes fade{from{opacity:0;transform:translateY(10px)}to{opacity:1;transform:translateY(0)}}
    .timestamp{font-size:.75rem;color:#999;margin-top:4px}
    .chat-input{display:flex;border-top:1px solid #e0e0e0;padding:16px;gap:8px;background:#fff}
    .chat-input input{flex:1;padding:12px 16px;border:1px solid #e0e0e0;border-radius:4px}
    .chat-input button{background:#3f51b5;border:none;border-radius:4px;padding:12px 16px;color:#fff;cursor:pointer}
    @media(max-width:480px){.chat-header{font-size:1rem;padding:12px}.chat-input{padding:12px}.chat-input input{padding:10px 12px}.chat-input button{padding:10px 14px}}
  </style>
</head>
<body>
  <div class="chat-container">
    <div class="chat-header">Gradient M Chatbot <a href="/reset">Clear</a></div>
    <div id="loader" class="loading-indicator"></div>
    <div class="chat-messages">
      {{range .Conversation}}
        <div class="message {{.Role}}">
          <div class="bubble">{{.Content}}</div>
          <div class="timestamp">{{.Timestamp}}</div>
        </div>
      {{end}}
    </div>
    <form class="chat-input" action="/chat" method="post" onsubmit="document.getElementById('loader').style.display='block';">
      <input type="text" name="question" placeholder="Type your question…" required autofocus>
      <button type="submit">Send</button>
    </form>
  </div>
</body>
</html>
`
