package memory

import (
	"time"

	"github.com/desenroladireito/desenrola-direito/internal/model"
)

// The fixed content set. Article bodies are markdown with embedded
// <!-- anuncio --> markers that the frontend swaps for ad slots.

func seedCategories() []model.Category {
	return []model.Category{
		{
			Name:        "Direito do Consumidor",
			Slug:        "direito-consumidor",
			Description: str("Seus direitos em compras, serviços, cobranças indevidas e golpes."),
			IconName:    str("shopping-cart"),
			ImageURL:    str("/images/categorias/consumidor.jpg"),
		},
		{
			Name:        "Direito Trabalhista",
			Slug:        "direito-trabalhista",
			Description: str("Demissão, verbas rescisórias, FGTS, horas extras e assédio no trabalho."),
			IconName:    str("briefcase"),
			ImageURL:    str("/images/categorias/trabalhista.jpg"),
		},
		{
			Name:        "Direito de Família",
			Slug:        "direito-familia",
			Description: str("Divórcio, pensão alimentícia, guarda dos filhos e inventário."),
			IconName:    str("users"),
			ImageURL:    str("/images/categorias/familia.jpg"),
		},
		{
			Name:        "Direito Criminal",
			Slug:        "direito-criminal",
			Description: str("O que fazer em caso de prisão, boletim de ocorrência e seus direitos."),
			IconName:    str("shield"),
			ImageURL:    str("/images/categorias/criminal.jpg"),
		},
		{
			Name:        "Direito Médico e da Saúde",
			Slug:        "direito-medico",
			Description: str("Planos de saúde, erro médico e acesso a medicamentos pelo SUS."),
			IconName:    str("heart-pulse"),
			ImageURL:    str("/images/categorias/medico.jpg"),
		},
		{
			Name:        "Direito Previdenciário",
			Slug:        "direito-previdenciario",
			Description: str("Aposentadoria, auxílio-doença, BPC/LOAS e benefícios do INSS."),
			IconName:    str("landmark"),
			ImageURL:    str("/images/categorias/previdenciario.jpg"),
		},
	}
}

// seedArticle ties an article to its category by slug; Seed resolves the
// slug to the assigned ID before inserting.
type seedArticle struct {
	categorySlug string
	article      model.Article
}

func seedArticles() []seedArticle {
	return []seedArticle{
		{
			categorySlug: "direito-consumidor",
			article: model.Article{
				Title:   "Golpes no PIX: como recuperar seu dinheiro",
				Slug:    "golpes-pix-como-recuperar-dinheiro",
				Excerpt: "Caiu em um golpe no PIX? Veja o passo a passo para registrar o MED no banco e aumentar suas chances de reaver o valor.",
				Content: "Os golpes envolvendo PIX explodiram no Brasil. O mais comum é o golpe do falso " +
					"funcionário do banco, em que o criminoso liga se passando pela central de segurança.\n\n" +
					"## O que fazer nas primeiras horas\n\n" +
					"1. Ligue para o seu banco e peça a abertura do **MED** (Mecanismo Especial de Devolução) do Banco Central.\n" +
					"2. Registre boletim de ocorrência online.\n" +
					"3. Guarde comprovantes, conversas e o horário exato da transferência.\n\n" +
					"<!-- anuncio -->\n\n" +
					"## O banco é obrigado a devolver?\n\n" +
					"Depende. Se houve falha de segurança do banco, como transferência fora do seu padrão " +
					"de uso sem bloqueio preventivo, a Justiça tem condenado as instituições a ressarcir. " +
					"O prazo de análise do MED é de até 7 dias.",
				ImageURL:    str("/images/artigos/golpes-pix.jpg"),
				PublishDate: date(2025, time.March, 10),
				Featured:    1,
			},
		},
		{
			categorySlug: "direito-consumidor",
			article: model.Article{
				Title:   "Voo cancelado ou atrasado: seus direitos segundo a ANAC",
				Slug:    "voo-cancelado-atrasado-direitos",
				Excerpt: "Atraso de mais de 4 horas dá direito a reacomodação, reembolso e, em muitos casos, indenização por dano moral.",
				Content: "A Resolução 400 da ANAC garante assistência material conforme o tempo de atraso: " +
					"comunicação a partir de 1 hora, alimentação a partir de 2 horas e hospedagem a partir de 4 horas.\n\n" +
					"<!-- anuncio -->\n\n" +
					"## Indenização\n\n" +
					"Perdeu compromisso importante, conexão internacional ou passou a noite no aeroporto? " +
					"Os tribunais costumam fixar indenizações entre R$ 3.000 e R$ 10.000 dependendo do caso. " +
					"Guarde cartão de embarque, comprovantes de gastos e fotos dos painéis.",
				ImageURL:    str("/images/artigos/voo-cancelado.jpg"),
				PublishDate: date(2025, time.February, 18),
				Featured:    0,
			},
		},
		{
			categorySlug: "direito-consumidor",
			article: model.Article{
				Title:   "Nome negativado indevidamente: como limpar e ser indenizado",
				Slug:    "nome-negativado-indevidamente",
				Excerpt: "Cobrança de dívida que não é sua ou já paga? A negativação indevida gera dano moral presumido.",
				Content: "Pelo entendimento do STJ, a inscrição indevida em cadastros como Serasa e SPC gera " +
					"**dano moral presumido**: não é preciso provar o prejuízo, basta provar o erro.\n\n" +
					"## Passo a passo\n\n" +
					"1. Peça ao órgão de proteção o registro completo da dívida.\n" +
					"2. Notifique a empresa cobradora exigindo a baixa em 5 dias.\n" +
					"3. Procure o Juizado Especial Cível — causas até 20 salários mínimos dispensam advogado.\n\n" +
					"<!-- anuncio -->\n\n" +
					"Atenção à Súmula 385: quem já tem negativação legítima anterior não recebe indenização, " +
					"apenas a exclusão do registro errado.",
				ImageURL:    str("/images/artigos/nome-negativado.jpg"),
				PublishDate: date(2024, time.November, 5),
				Featured:    0,
			},
		},
		{
			categorySlug: "direito-consumidor",
			article: model.Article{
				Title:   "Produto com defeito: troca, conserto ou dinheiro de volta?",
				Slug:    "produto-defeito-troca-conserto-reembolso",
				Excerpt: "O fornecedor tem 30 dias para consertar. Depois disso, você escolhe: produto novo, abatimento ou reembolso.",
				Content: "O artigo 18 do Código de Defesa do Consumidor dá ao fornecedor o prazo de **30 dias** " +
					"para sanar o vício do produto. Esgotado o prazo, a escolha passa a ser sua:\n\n" +
					"- substituição por produto novo;\n" +
					"- restituição imediata do valor pago, corrigido;\n" +
					"- abatimento proporcional do preço.\n\n" +
					"<!-- anuncio -->\n\n" +
					"Para produtos essenciais, como geladeira e fogão, a jurisprudência dispensa a espera dos 30 dias. " +
					"O prazo para reclamar é de 30 dias para produtos não duráveis e 90 dias para duráveis.",
				ImageURL:    str("/images/artigos/produto-defeito.jpg"),
				PublishDate: date(2024, time.September, 12),
				Featured:    0,
			},
		},
		{
			categorySlug: "direito-trabalhista",
			article: model.Article{
				Title:   "Demissão sem justa causa: tudo que você tem direito a receber",
				Slug:    "demissao-sem-justa-causa-direitos",
				Excerpt: "Saldo de salário, aviso prévio, 13º e férias proporcionais, multa de 40% do FGTS e seguro-desemprego.",
				Content: "Na demissão sem justa causa, o trabalhador com carteira assinada recebe:\n\n" +
					"- saldo de salário dos dias trabalhados no mês;\n" +
					"- aviso prévio (30 dias + 3 dias por ano de casa, até 90);\n" +
					"- 13º salário proporcional;\n" +
					"- férias vencidas e proporcionais, com 1/3 constitucional;\n" +
					"- multa de 40% sobre o saldo do FGTS;\n" +
					"- guias do seguro-desemprego.\n\n" +
					"<!-- anuncio -->\n\n" +
					"## Prazo de pagamento\n\n" +
					"A empresa tem **10 dias corridos** a partir do fim do contrato para pagar a rescisão " +
					"(art. 477 da CLT). O atraso gera multa de um salário a favor do trabalhador. Use nossa " +
					"calculadora de rescisão para estimar os valores.",
				ImageURL:    str("/images/artigos/demissao-sem-justa-causa.jpg"),
				PublishDate: date(2025, time.March, 2),
				Featured:    1,
			},
		},
		{
			categorySlug: "direito-trabalhista",
			article: model.Article{
				Title:   "Trabalho sem carteira assinada: como provar o vínculo",
				Slug:    "trabalho-sem-carteira-assinada",
				Excerpt: "Mensagens, testemunhas e comprovantes de pagamento servem de prova para reconhecer o vínculo na Justiça.",
				Content: "Trabalhou sem registro? A Justiça do Trabalho reconhece o vínculo quando há " +
					"pessoalidade, habitualidade, subordinação e salário — mesmo sem nenhum papel assinado.\n\n" +
					"## Provas que funcionam\n\n" +
					"- conversas de WhatsApp com ordens do patrão;\n" +
					"- transferências bancárias recorrentes;\n" +
					"- escalas de trabalho, crachás e uniformes;\n" +
					"- testemunhas que trabalharam com você.\n\n" +
					"<!-- anuncio -->\n\n" +
					"O prazo para reclamar é de até 2 anos após a saída, cobrando os últimos 5 anos trabalhados.",
				ImageURL:    str("/images/artigos/sem-carteira.jpg"),
				PublishDate: date(2024, time.December, 9),
				Featured:    0,
			},
		},
		{
			categorySlug: "direito-trabalhista",
			article: model.Article{
				Title:   "Horas extras não pagas: calcule o que a empresa deve",
				Slug:    "horas-extras-nao-pagas",
				Excerpt: "Hora extra vale no mínimo 50% a mais. Banco de horas irregular também gera direito ao pagamento.",
				Content: "A jornada padrão é de 8 horas diárias e 44 semanais. O que passar disso deve ser pago " +
					"com adicional mínimo de **50%** (100% em domingos e feriados).\n\n" +
					"<!-- anuncio -->\n\n" +
					"## Banco de horas\n\n" +
					"Compensação só vale com acordo escrito. Horas acumuladas além de 6 meses sem compensação " +
					"devem ser pagas como extras. Cartões de ponto britânicos (sempre o mesmo horário) são " +
					"considerados inválidos pela Justiça, e vale a jornada que o trabalhador afirmar.",
				ImageURL:    str("/images/artigos/horas-extras.jpg"),
				PublishDate: date(2024, time.August, 21),
				Featured:    0,
			},
		},
		{
			categorySlug: "direito-familia",
			article: model.Article{
				Title:   "Pensão Alimentícia: valores, cálculo e o que fazer quando não é paga",
				Slug:    "pensao-alimenticia-valores-calculo",
				Excerpt: "Não existe percentual fixo em lei: a pensão é definida pelo binômio necessidade da criança e possibilidade de quem paga.",
				Content: "A pensão alimentícia é fixada pelo juiz com base no **binômio necessidade-possibilidade**: " +
					"o que a criança precisa e o quanto o alimentante pode pagar sem comprometer o próprio sustento.\n\n" +
					"Na prática, os tribunais costumam fixar entre 15% e 30% dos rendimentos líquidos para um filho, " +
					"mas cada caso é avaliado individualmente.\n\n" +
					"<!-- anuncio -->\n\n" +
					"## Pensão atrasada\n\n" +
					"O atraso de até 3 parcelas permite a execução pelo rito da **prisão civil**: o devedor tem 3 dias " +
					"para pagar, justificar ou ser preso por até 3 meses. Dívidas mais antigas são cobradas por " +
					"penhora de bens e desconto em folha. Use nossa calculadora de pensão para uma estimativa inicial.",
				ImageURL:    str("/images/artigos/pensao-alimenticia.jpg"),
				PublishDate: date(2025, time.January, 27),
				Featured:    1,
			},
		},
		{
			categorySlug: "direito-familia",
			article: model.Article{
				Title:   "Divórcio: quanto custa e quanto tempo demora",
				Slug:    "divorcio-custo-tempo",
				Excerpt: "Divórcio consensual sem filhos menores pode ser feito em cartório em poucos dias.",
				Content: "Desde 2007 o divórcio consensual pode ser feito **em cartório**, desde que não haja " +
					"filhos menores ou incapazes e o casal esteja de acordo sobre a partilha.\n\n" +
					"- Em cartório: dias ou semanas, custo de emolumentos a partir de R$ 500.\n" +
					"- Judicial consensual: 2 a 6 meses.\n" +
					"- Judicial litigioso: 1 a 3 anos ou mais.\n\n" +
					"<!-- anuncio -->\n\n" +
					"Quem não pode pagar advogado tem direito à Defensoria Pública. Em todos os formatos é " +
					"obrigatória a presença de ao menos um advogado ou defensor.",
				ImageURL:    str("/images/artigos/divorcio.jpg"),
				PublishDate: date(2024, time.October, 14),
				Featured:    0,
			},
		},
		{
			categorySlug: "direito-familia",
			article: model.Article{
				Title:   "Guarda compartilhada: como funciona na prática",
				Slug:    "guarda-compartilhada-como-funciona",
				Excerpt: "Guarda compartilhada é a regra no Brasil e não elimina a pensão alimentícia.",
				Content: "Desde 2014 a guarda compartilhada é a **regra** no Brasil, aplicada mesmo sem acordo " +
					"entre os pais, salvo quando um deles não tem condições de exercê-la.\n\n" +
					"Compartilhar a guarda significa dividir as decisões sobre a vida do filho — escola, saúde, " +
					"religião — e não necessariamente dividir o tempo em partes iguais. A casa de referência " +
					"da criança continua sendo definida pelo juiz.\n\n" +
					"<!-- anuncio -->\n\n" +
					"Importante: guarda compartilhada **não acaba com a pensão**. Quem tem maior capacidade " +
					"financeira segue contribuindo proporcionalmente.",
				ImageURL:    str("/images/artigos/guarda-compartilhada.jpg"),
				PublishDate: date(2024, time.July, 30),
				Featured:    0,
			},
		},
		{
			categorySlug: "direito-criminal",
			article: model.Article{
				Title:   "Fui parado em uma blitz: quais são os meus direitos?",
				Slug:    "blitz-direitos-motorista",
				Excerpt: "Você é obrigado a mostrar documentos, mas o bafômetro pode ser recusado — com consequências administrativas.",
				Content: "Em uma blitz, o motorista é obrigado a apresentar CNH e documento do veículo. " +
					"A recusa ao **bafômetro** não é crime, mas gera multa gravíssima multiplicada por 10 " +
					"(R$ 2.934,70) e suspensão da CNH por 12 meses.\n\n" +
					"<!-- anuncio -->\n\n" +
					"## O que a polícia não pode fazer\n\n" +
					"- revistar o carro sem fundada suspeita;\n" +
					"- reter o veículo por dívida de IPVA sem regulamentação;\n" +
					"- apreender a CNH por multas não pagas.\n\n" +
					"Filmar a abordagem é direito seu e não pode ser impedido.",
				ImageURL:    str("/images/artigos/blitz.jpg"),
				PublishDate: date(2024, time.June, 17),
				Featured:    0,
			},
		},
		{
			categorySlug: "direito-criminal",
			article: model.Article{
				Title:   "Multa de trânsito: como recorrer em 3 etapas",
				Slug:    "multa-transito-como-recorrer",
				Excerpt: "Defesa prévia, JARI e CETRAN: você pode recorrer três vezes antes de pagar qualquer multa.",
				Content: "Toda multa pode ser contestada em até três instâncias: **defesa prévia** junto ao órgão " +
					"autuador, recurso à **JARI** e, por fim, recurso ao **CETRAN**.\n\n" +
					"## Erros que anulam a multa\n\n" +
					"- placa ou modelo do veículo errados no auto de infração;\n" +
					"- notificação enviada após 30 dias da infração;\n" +
					"- agente sem competência para autuar naquele local.\n\n" +
					"<!-- anuncio -->\n\n" +
					"Enquanto o recurso estiver pendente, a multa não pode ser cobrada nem impedir o " +
					"licenciamento. Pagando até a data do vencimento há desconto de 20%. Use nossa calculadora " +
					"de multas para saber o valor atualizado e a pontuação.",
				ImageURL:    str("/images/artigos/multa-transito.jpg"),
				PublishDate: date(2025, time.February, 3),
				Featured:    1,
			},
		},
		{
			categorySlug: "direito-medico",
			article: model.Article{
				Title:   "Plano de saúde negou o procedimento: o que fazer",
				Slug:    "plano-saude-negou-procedimento",
				Excerpt: "Negativa de cobertura de urgência pode ser revertida com liminar em poucos dias.",
				Content: "As negativas mais comuns — alegação de carência, procedimento fora do rol da ANS ou " +
					"doença preexistente — caem com frequência na Justiça.\n\n" +
					"## Passo a passo\n\n" +
					"1. Exija a negativa **por escrito** (o plano é obrigado a fornecer em 24h).\n" +
					"2. Reúna o pedido médico detalhado com urgência justificada.\n" +
					"3. Registre reclamação na ANS (prazo de resposta de 5 dias úteis).\n" +
					"4. Procure advogado ou Defensoria para pedido de liminar.\n\n" +
					"<!-- anuncio -->\n\n" +
					"Em casos de urgência e emergência a carência máxima legal é de **24 horas**, " +
					"independentemente do que diga o contrato.",
				ImageURL:    str("/images/artigos/plano-saude.jpg"),
				PublishDate: date(2025, time.January, 8),
				Featured:    1,
			},
		},
		{
			categorySlug: "direito-previdenciario",
			article: model.Article{
				Title:   "Auxílio-doença: quem tem direito e como pedir pelo Meu INSS",
				Slug:    "auxilio-doenca-como-pedir",
				Excerpt: "Incapacidade por mais de 15 dias e qualidade de segurado: veja os requisitos e os documentos da perícia.",
				Content: "O auxílio por incapacidade temporária (antigo auxílio-doença) exige:\n\n" +
					"- incapacidade para o trabalho por mais de 15 dias;\n" +
					"- qualidade de segurado (contribuindo ou em período de graça);\n" +
					"- carência de 12 contribuições, dispensada em acidentes e doenças graves.\n\n" +
					"<!-- anuncio -->\n\n" +
					"## A perícia\n\n" +
					"Leve todos os laudos, exames e atestados com CID e data de início da incapacidade. " +
					"Negado o pedido, cabe recurso administrativo em 30 dias ou ação judicial — a Justiça " +
					"nomeia perito independente.",
				ImageURL:    str("/images/artigos/auxilio-doenca.jpg"),
				PublishDate: date(2024, time.May, 22),
				Featured:    0,
			},
		},
		{
			categorySlug: "direito-previdenciario",
			article: model.Article{
				Title:   "Aposentadoria em 2025: regras de transição explicadas",
				Slug:    "aposentadoria-regras-transicao",
				Excerpt: "Pontos, idade progressiva ou pedágio: descubra qual regra de transição vale mais a pena para você.",
				Content: "Quem já contribuía antes da reforma de 2019 pode se aposentar por uma das regras de " +
					"transição:\n\n" +
					"- **Pontos**: soma de idade + tempo de contribuição (92/102 em 2025, mulher/homem).\n" +
					"- **Idade progressiva**: 59 anos (mulher) e 64 anos (homem) em 2025, com 30/35 anos de contribuição.\n" +
					"- **Pedágio de 50%**: para quem estava a menos de 2 anos da aposentadoria na reforma.\n" +
					"- **Pedágio de 100%**: idade mínima de 57/60 mais o dobro do tempo que faltava.\n\n" +
					"<!-- anuncio -->\n\n" +
					"Antes de dar entrada, solicite o extrato CNIS no Meu INSS e confira se todos os vínculos " +
					"aparecem — períodos sem registro derrubam o benefício.",
				ImageURL:    str("/images/artigos/aposentadoria.jpg"),
				PublishDate: date(2025, time.March, 15),
				Featured:    0,
			},
		},
	}
}

func seedSolutions() []model.Solution {
	return []model.Solution{
		{
			Title:       "Calculadora de Rescisão",
			Description: "Estime em minutos quanto você deve receber na demissão: aviso prévio, 13º, férias e multa do FGTS.",
			ImageURL:    str("/images/solucoes/calculadora-rescisao.jpg"),
			Link:        "/calculadoras/rescisao",
			LinkText:    "Calcular agora",
		},
		{
			Title:       "Modelos de Documentos",
			Description: "Baixe gratuitamente modelos de carta de cobrança, recurso de multa e notificação extrajudicial.",
			ImageURL:    str("/images/solucoes/modelos-documentos.jpg"),
			Link:        "/documentos",
			LinkText:    "Ver modelos",
		},
		{
			Title:       "Comunidade Tira-Dúvidas",
			Description: "Publique sua dúvida jurídica e veja respostas de outros leitores e colaboradores.",
			ImageURL:    str("/images/solucoes/comunidade.jpg"),
			Link:        "/comunidade",
			LinkText:    "Participar",
		},
		{
			Title:       "Fale com um Advogado",
			Description: "Envie sua mensagem pelo formulário de contato e receba orientação inicial por e-mail.",
			ImageURL:    str("/images/solucoes/fale-advogado.jpg"),
			Link:        "/contato",
			LinkText:    "Enviar mensagem",
		},
	}
}
